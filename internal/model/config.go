package model

// ================ Config ================
type CarouselConfig struct {
	SampleSize  int    `envconfig:"CAROUSEL_SAMPLE_SIZE" default:"10"`
	Rows        int    `envconfig:"CAROUSEL_ROWS" default:"2"`
	Breakpoints string `envconfig:"CAROUSEL_BREAKPOINTS" default:"0:1,768:2,1024:3,1280:4"`
	Loop        bool   `envconfig:"CAROUSEL_LOOP" default:"true"`
	Title       string `envconfig:"CAROUSEL_TITLE" default:"Our Products"`
	Heading     string `envconfig:"CAROUSEL_HEADING" default:"Explore Our Products"`
	ViewAllLink string `envconfig:"CAROUSEL_VIEW_ALL_LINK" default:"/products"`
	// ErrorNotice is shown next to the content when the product fetch failed.
	ErrorNotice string `envconfig:"CAROUSEL_ERROR_NOTICE" default:"Something Wrong happened, Please Try again Later ..."`
}

type CatalogConfig struct {
	URL             string `envconfig:"CATALOG_URL"`
	Timeout         string `envconfig:"CATALOG_TIMEOUT" default:"5s"`
	RefreshInterval string `envconfig:"CATALOG_REFRESH_INTERVAL" default:"5m"`
}

type CartConfig struct {
	TTL string `envconfig:"CART_TTL" default:"24h"`
}

type HTTPConfig struct {
	Addr            string `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout string `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"15s"`
}
