package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/robdd/bdd"
)

func MustString(m *bdd.Manager, root bdd.Ref, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(m, root, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
