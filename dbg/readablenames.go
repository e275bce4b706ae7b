package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/osuushi/meshedit/editor"
)

// This converts vertex IDs into random readable names, which are much easier
// to tell apart in a long log than small integers. It leaks memory but
// generates the names lazily, so it's not a problem unless you're actually
// using it.

var memo map[editor.VertexID]string

func init() {
	memo = make(map[editor.VertexID]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same vertex between runs.
	petname.NonDeterministicMode()
}

func Name(id editor.VertexID) string {
	if id == 0 {
		return "Ø"
	}

	if r, ok := memo[id]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[id] = r
	return r
}
