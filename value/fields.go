package value

import (
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Field describes how one struct field takes part in a conversion.
type Field struct {
	Name     string // Go field name
	Key      string // object key in the Value
	Index    []int  // index path for reflect.Value.FieldByIndex
	Type     reflect.Type
	Required bool
}

var fieldCache sync.Map // map[reflect.Type][]Field

// Fields returns the participating fields of struct type t in declaration
// order. Promotion of embedded struct fields and the tie-breaking between
// equally named fields follow encoding/json. Non-struct types have no
// fields.
func Fields(t reflect.Type) []Field {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	if f, ok := fieldCache.Load(t); ok {
		return f.([]Field)
	}
	f, _ := fieldCache.LoadOrStore(t, typeFields(t))
	return f.([]Field)
}

type candidate struct {
	Field
	depth  int
	tagged bool
}

type embedded struct {
	typ      reflect.Type
	index    []int
	optional bool
}

func typeFields(t reflect.Type) []Field {
	var found []candidate
	visited := map[reflect.Type]bool{}
	// Embeddings of each struct type at the current and the next depth.
	count, nextCount := map[reflect.Type]int{}, map[reflect.Type]int{}
	next := []embedded{{typ: t}}
	for depth := 0; len(next) > 0; depth++ {
		current := next
		next = nil
		count, nextCount = nextCount, map[reflect.Type]int{}
		for _, e := range current {
			if visited[e.typ] {
				continue
			}
			visited[e.typ] = true
			for i := 0; i < e.typ.NumField(); i++ {
				sf := e.typ.Field(i)
				tag := sf.Tag.Get("json")
				if tag == "-" {
					continue
				}
				name, opts := parseTag(tag)
				index := append(append([]int(nil), e.index...), i)
				ft := sf.Type
				if sf.Anonymous {
					inner := ft
					if inner.Kind() == reflect.Pointer {
						inner = inner.Elem()
					}
					if !sf.IsExported() && (ft.Kind() == reflect.Pointer || inner.Kind() != reflect.Struct) {
						continue
					}
					if name == "" && inner.Kind() == reflect.Struct {
						nextCount[inner]++
						if nextCount[inner] == 1 {
							next = append(next, embedded{
								typ:      inner,
								index:    index,
								optional: e.optional || ft.Kind() == reflect.Pointer,
							})
						}
						continue
					}
				} else if !sf.IsExported() {
					continue
				}
				key := name
				if key == "" {
					key = sf.Name
				}
				found = append(found, candidate{
					Field: Field{
						Name:     sf.Name,
						Key:      key,
						Index:    index,
						Type:     ft,
						Required: !e.optional && isRequired(sf, opts),
					},
					depth:  depth,
					tagged: name != "",
				})
				if count[e.typ] > 1 {
					// Reached through several embeddings: the copies cancel
					// out in dominantFields.
					found = append(found, found[len(found)-1])
				}
			}
		}
	}
	return dominantFields(found)
}

// dominantFields drops fields hidden by shallower or tagged fields of the
// same key, then restores declaration order.
func dominantFields(found []candidate) []Field {
	byKey := map[string][]candidate{}
	var keys []string
	for _, c := range found {
		if _, ok := byKey[c.Key]; !ok {
			keys = append(keys, c.Key)
		}
		byKey[c.Key] = append(byKey[c.Key], c)
	}
	var out []candidate
	for _, k := range keys {
		cs := byKey[k]
		minDepth := cs[0].depth
		for _, c := range cs[1:] {
			if c.depth < minDepth {
				minDepth = c.depth
			}
		}
		var shallow []candidate
		for _, c := range cs {
			if c.depth == minDepth {
				shallow = append(shallow, c)
			}
		}
		if len(shallow) == 1 {
			out = append(out, shallow[0])
			continue
		}
		var tagged []candidate
		for _, c := range shallow {
			if c.tagged {
				tagged = append(tagged, c)
			}
		}
		if len(tagged) == 1 {
			out = append(out, tagged[0])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return indexLess(out[i].Index, out[j].Index)
	})
	fields := make([]Field, len(out))
	for i, c := range out {
		fields[i] = c.Field
	}
	return fields
}

func indexLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func parseTag(tag string) (name string, opts []string) {
	parts := strings.Split(tag, ",")
	return parts[0], parts[1:]
}

func isRequired(sf reflect.StructField, opts []string) bool {
	switch sf.Type.Kind() {
	case reflect.Pointer, reflect.Interface:
		return false
	}
	for _, o := range opts {
		if o == "omitempty" || o == "omitzero" {
			return false
		}
	}
	for _, o := range strings.Split(sf.Tag.Get("tryfrom"), ",") {
		if strings.TrimSpace(o) == "optional" {
			return false
		}
	}
	return true
}
