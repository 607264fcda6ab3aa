package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

// CatalogPageData is everything the catalog page renders.
type CatalogPageData struct {
	Title     string
	Notice    string
	ScriptSrc string
	Filters   []FilterButton
	Groups    []BucketGroupData
}

// FilterButton is one entry of #filter-buttons. Href is the page with the
// filter state this button would switch to.
type FilterButton struct {
	Bucket string
	Href   string
	Active bool
}

type BucketGroupData struct {
	Bucket      string
	Description string
	Hidden      bool
	Cells       []CellData
}

type CellData struct {
	Name        string
	Bucket      string
	Color       string
	Pills       []string
	PlayerCount string
	Time        string
	Description string
	Open        bool

	// ScrollOffset is the gap, in pixels, kept above the cell once opened.
	ScrollOffset int
	Carousel     CarouselData
}

type CarouselData struct {
	Images         []ImageData
	Drag           string
	Index          int
	SwipeThreshold int
	Placeholder    string
}

type ImageData struct {
	Src string
	Alt string
}
