package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Apply bool
	Parse bool
	Table bool
	Sat   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Apply = boolEnv("BDD_DEBUG_APPLY")
	d.Parse = boolEnv("BDD_DEBUG_PARSE")
	d.Table = boolEnv("BDD_DEBUG_TABLE")
	d.Sat = boolEnv("BDD_DEBUG_SAT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Apply() bool {
	return d.Apply
}
func Parse() bool {
	return d.Parse
}
func Table() bool {
	return d.Table
}
func Sat() bool {
	return d.Sat
}
