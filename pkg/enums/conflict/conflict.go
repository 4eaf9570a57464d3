package conflict

import (
	"fmt"
	"strings"
)

// Policy decides what happens when an output file already exists.
type Policy string

const (
	Overwrite Policy = "overwrite"
	Skip      Policy = "skip"
	Rename    Policy = "rename"
)

var policyDisplay = map[Policy]map[string]string{
	Overwrite: {"zh-Hans": "覆盖", "en": "Overwrite"},
	Skip:      {"zh-Hans": "跳过", "en": "Skip"},
	Rename:    {"zh-Hans": "重命名", "en": "Rename"},
}

func (p Policy) String() string {
	return string(p)
}

func (p Policy) IsValid() bool {
	_, ok := policyDisplay[p]
	return ok
}

// ParsePolicy parses a policy name case-insensitively. An empty name means Overwrite.
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Overwrite, nil
	}
	p := Policy(name)
	if !p.IsValid() {
		return "", fmt.Errorf("%s is not a valid conflict policy, try [%s, %s, %s]", name, Overwrite, Skip, Rename)
	}
	return p, nil
}

func GetDisplay(p Policy, lang string) string {
	if display, ok := policyDisplay[p]; ok {
		if str, ok := display[lang]; ok {
			return str
		}
	}
	return policyDisplay[p]["en"]
}
