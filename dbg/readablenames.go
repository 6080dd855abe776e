package dbg

import (
	"fmt"
	"reflect"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// This converts pointers into random readable names, which are much easier to
// tell apart in a sweep trace than hex addresses. Names are memoized forever,
// so this leaks, but nothing is generated unless debug logging asks for it.

var (
	memo  = make(map[interface{}]string)
	mutex sync.Mutex
	title = cases.Title(language.English)
)

func init() {
	// Names are handed out in order of demand, so make them nondeterministic as
	// a reminder that a name means nothing across runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	mutex.Lock()
	defer mutex.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title.String(petname.Adjective()), title.String(petname.Name()))
	memo[obj] = r
	return r
}

// Types that dress up their readable name, e.g. with colors.
type Namer interface {
	DbgName() string
}

// A zap field carrying the readable name of obj.
func Field(key string, obj interface{}) zap.Field {
	if namer, ok := obj.(Namer); ok {
		if v := reflect.ValueOf(obj); !(v.Kind() == reflect.Ptr && v.IsNil()) {
			return zap.String(key, namer.DbgName())
		}
	}
	return zap.String(key, Name(obj))
}
