package router

// Views bound by the application route table
const (
	ViewHome           ViewID = "home"
	ViewFindTrucks     ViewID = "find-trucks"
	ViewTruckDetails   ViewID = "truck-details"
	ViewEvents         ViewID = "events"
	ViewVendorLogin    ViewID = "vendor-login"
	ViewUserLogin      ViewID = "user-login"
	ViewBlog           ViewID = "blog"
	ViewAbout          ViewID = "about"
	ViewSustainability ViewID = "sustainability"
	ViewNotFound       ViewID = "not-found"
)

// Paths used by navigation requests
const (
	PathHome           = "/"
	PathFindTrucks     = "/find-trucks"
	PathEvents         = "/events"
	PathVendorLogin    = "/vendor-login"
	PathUserLogin      = "/login"
	PathBlog           = "/blog"
	PathAbout          = "/aboutus"
	PathSustainability = "/sustainability"
)

// TruckPath builds the details path for a truck id
func TruckPath(id string) string {
	return "/trucks/" + escapeSegment(id)
}

// DefaultTable returns the application's route table
func DefaultTable(mode ConflictMode) *Table {
	return NewTable(ViewNotFound, mode).
		MustAdd(PathHome, ViewHome).
		MustAdd(PathFindTrucks, ViewFindTrucks).
		MustAdd("/trucks/:id", ViewTruckDetails).
		MustAdd(PathEvents, ViewEvents).
		MustAdd(PathVendorLogin, ViewVendorLogin).
		MustAdd(PathUserLogin, ViewUserLogin).
		MustAdd(PathBlog, ViewBlog).
		MustAdd(PathAbout, ViewAbout).
		MustAdd(PathSustainability, ViewSustainability)
}
