package models

// PageMeta describes the page returned by a product listing.
type PageMeta struct {
	PerPage       int `json:"perPage"`
	TotalPages    int `json:"totalPages"`
	CurrentPage   int `json:"currentPage"`
	TotalElements int `json:"totalElements"`
}

// ProductPage is one page of a (possibly filtered) product listing
type ProductPage struct {
	Data []Product `json:"data"`
	Meta PageMeta  `json:"meta"`
}
