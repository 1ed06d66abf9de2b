package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Marshal bool
	Parse   bool
	Patch   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Marshal = boolEnv("DDBM_DEBUG_MARSHAL")
	d.Parse = boolEnv("DDBM_DEBUG_PARSE")
	d.Patch = boolEnv("DDBM_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Marshal() bool {
	return d.Marshal
}
func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}
