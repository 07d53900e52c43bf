package model

// Status is the product-fetch state the carousel view reacts to.
type Status string

const (
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusReady   Status = "ready"
)

// Direction selects the neighbouring page when navigating the carousel.
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// ParseDirection accepts "next" and "prev" and reports whether v was valid.
func ParseDirection(v string) (Direction, bool) {
	switch Direction(v) {
	case DirectionNext:
		return DirectionNext, true
	case DirectionPrev:
		return DirectionPrev, true
	default:
		return "", false
	}
}

// Breakpoint maps a minimum viewport width to the number of grid columns.
type Breakpoint struct {
	MinWidth      int `json:"min_width"`
	SlidesPerView int `json:"slides_per_view"`
}

// Page is one carousel slide group: Rows rows of Columns products, filled row first.
type Page struct {
	Index   int           `json:"index"`
	Columns int           `json:"columns"`
	Rows    []ProductList `json:"rows"`
}

// Items flattens the page back into row-major order.
func (p Page) Items() ProductList {
	var out ProductList
	for _, r := range p.Rows {
		out = append(out, r...)
	}
	return out
}

// Carousel is the view model for the "Our Products" section.
type Carousel struct {
	CartID      string   `json:"cart_id"`
	Title       string   `json:"title"`
	Heading     string   `json:"heading"`
	Status      Status   `json:"status"`
	Error       string   `json:"error,omitempty"`
	Total       int      `json:"total"`
	PageCount   int      `json:"page_count"`
	PrevPage    int      `json:"prev_page"`
	NextPage    int      `json:"next_page"`
	Page        *Page    `json:"page,omitempty"`
	ViewAllLink string   `json:"view_all_link"`
	ProductIDs  []string `json:"product_ids"`
}
