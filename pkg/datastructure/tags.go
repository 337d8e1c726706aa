package datastructure

// Tags is the free-form key/value attribute map of an element.
type Tags map[string]string

func NewTags(kv ...string) Tags {
	t := make(Tags, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		t[kv[i]] = kv[i+1]
	}
	return t
}

func (t Tags) HasKey(key string) bool {
	_, ok := t[key]
	return ok
}

func (t Tags) Get(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}

// Value returns the tag value or "" when the key is absent.
func (t Tags) Value(key string) string {
	return t[key]
}

// Is reports whether key is present and its value is one of values.
func (t Tags) Is(key string, values ...string) bool {
	v, ok := t[key]
	if !ok {
		return false
	}
	for _, want := range values {
		if v == want {
			return true
		}
	}
	return false
}
