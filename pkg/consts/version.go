package consts

// inject version by '-X' flag
// go build -ldflags "-X github.com/arenadl/arena-dl/pkg/consts.Version=${VERSION}"
var (
	Version   string = "dev"
	BuildTime string = "unknown"
	GitCommit string = "unknown"
)
