package blockclass

// BlockClass is the "class" tag the Are.na API attaches to every block.
type BlockClass string

const (
	Image      BlockClass = "Image"
	Link       BlockClass = "Link"
	Attachment BlockClass = "Attachment"
)

var supported = []BlockClass{Image, Link, Attachment}

func (c BlockClass) String() string {
	return string(c)
}

// IsSupported reports whether blocks of this class can be saved locally.
func (c BlockClass) IsSupported() bool {
	for _, s := range supported {
		if c == s {
			return true
		}
	}
	return false
}

func Supported() []BlockClass {
	return append([]BlockClass(nil), supported...)
}
