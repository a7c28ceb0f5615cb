package iconfile

// Output locations, relative to the working directory.
const (
	PNGPath = "web_alert/icons/icon.png"
	ICOPath = "web_alert/icons/icon.ico"
)
