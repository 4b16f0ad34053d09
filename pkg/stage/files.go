package stage

// Files is the fixed manifest of working files copied into the staging tree.
// A directory entry copies its direct children (one level, no recursion).
var Files = []string{
	"package.json",
	"main.js",
	"apphooks.js",
	"play.html",
	"prefs.html",
	"prefs.js",
	"about.html",
	"if-card.html",
	"fonts.css",
	"el-glkote.css",
	"icon-128.png",
	"docicon.ico",
	"quixe/lib/elkote.min.js",
	"quixe/lib/jquery-1.11.2.min.js",
	"quixe/lib/quixe.min.js",
	"quixe/media/waiting.gif",
	"font", // all files
}

// RootFiles are overlaid into each bundle directory after the bundler runs.
var RootFiles = []string{
	"LICENSE",
	"LICENSES-FONTS.txt",
}

// preparedDirs are created inside the staging root before any copying, so
// the nested quixe entries in Files have somewhere to land.
var preparedDirs = []string{
	"quixe",
	"quixe/lib",
	"quixe/media",
}
