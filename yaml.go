package tagid

import "gopkg.in/yaml.v3"

// MarshalYAML hands the wrapped value to the encoder, which emits it as a
// native scalar.
func (id ID[Tag, R]) MarshalYAML() (any, error) {
	return id.v, nil
}

// UnmarshalYAML decodes the node into R. A *yaml.TypeError from the decoder
// is returned unchanged.
func (id *ID[Tag, R]) UnmarshalYAML(node *yaml.Node) error {
	v := id.v
	if err := node.Decode(&v); err != nil {
		return err
	}
	*id = New[Tag](v)
	return nil
}
