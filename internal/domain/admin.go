package domain

// AdminUser is a back-office account from the static seed list. Password is
// stored and compared in plaintext; this is a demo placeholder, not a
// credential scheme.
type AdminUser struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"-" yaml:"password"`
}

type AdminRepository interface {
	FindAdmin(username string) (AdminUser, bool)
}

// StoreStats is a point-in-time count of the store collections.
type StoreStats struct {
	Products  int `json:"products"`
	Orders    int `json:"orders"`
	Carts     int `json:"carts"`
	Wishlists int `json:"wishlists"`
}
