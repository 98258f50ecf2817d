package staticbank

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// bankFile is the on-disk layout:
//
//	topics:
//	  COA:
//	    - question: ...
//	      options: [a, b, c, d]
//	      answer: b
type bankFile struct {
	Topics map[string][]Entry `yaml:"topics"`
}

func DecodeYAML(r io.Reader) (*Bank, error) {
	var f bankFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode bank yaml: %w", err)
	}
	if len(f.Topics) == 0 {
		return nil, fmt.Errorf("bank yaml has no topics")
	}
	return New(f.Topics)
}

func LoadYAML(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bank file: %w", err)
	}
	defer f.Close()
	return DecodeYAML(f)
}
