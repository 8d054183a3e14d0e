package domain

// Product as served by the upstream delivery API. The listing endpoint
// reports the category as `category_name`, the detail endpoint as `category`;
// both tags are kept and normalized in the catalog service. Image is derived
// locally and never comes from upstream.
type Product struct {
	Article      int     `json:"article"`
	Name         string  `json:"name"`
	StoreName    string  `json:"store_name,omitempty"`
	Category     string  `json:"category,omitempty"`
	CategoryName string  `json:"category_name,omitempty"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	Released     bool    `json:"released"`
	Image        string  `json:"image,omitempty"`
}

type Review struct {
	Username   string `json:"username"`
	ReviewText string `json:"review_text"`
	Rating     int    `json:"rating,omitempty"`
	ReviewDate string `json:"review_date,omitempty"`
}

type Profile struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	BirthDate   string `json:"birthDate"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

// Order identity, date and status are assigned upstream.
type Order struct {
	OrderID   int    `json:"order_id"`
	OrderDate string `json:"order_date"`
	Status    string `json:"status"`
}

// OrderLine is the projection sent when placing an order: only article and
// the price the line carried in the cart.
type OrderLine struct {
	Article int     `json:"article"`
	Price   float64 `json:"price"`
}

// FavoriteEntry as listed on the profile page.
type FavoriteEntry struct {
	ProductName string `json:"product_name"`
	Article     int    `json:"article"`
	AddedDate   string `json:"added_date"`
}

// ProfileReview is a review joined with its product name.
type ProfileReview struct {
	ReviewText  string `json:"review_text"`
	Rating      int    `json:"rating,omitempty"`
	ReviewDate  string `json:"review_date,omitempty"`
	ProductName string `json:"product_name"`
}
