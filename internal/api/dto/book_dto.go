package dto

type CreateBookDTO struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	Price       string `json:"price"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
	CategoryIDs []uint `json:"category_ids"`
}

type UpdateBookDTO struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	Price       string `json:"price"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
}

type BookDTO struct {
	BookID      uint          `json:"book_id"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	ISBN        string        `json:"isbn"`
	Price       string        `json:"price"`
	Description string        `json:"description"`
	CoverImage  string        `json:"cover_image"`
	Categories  []CategoryDTO `json:"categories,omitempty"`
}

type BookPageDTO struct {
	Books    []BookDTO `json:"books"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Total    int64     `json:"total"`
}

type CategoryDTO struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
}

type CreateCategoryDTO struct {
	Name string `json:"name"`
}
