package syntax

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hotg-ai/rune-compiler/pkg/path"
)

// Document is the parsed surface form of a Runefile (spec.md §3, §6.1): an
// image Path and an unordered mapping from stage name to Stage.
type Document struct {
	Image    path.Path
	Pipeline map[string]Stage
}

const (
	keyImage    = "image"
	keyPipeline = "pipeline"
)

// UnmarshalYAML decodes the top-level `image`/`pipeline` keys, rejecting
// any other top-level key (spec.md §6.1) and any empty stage name
// (spec.md §4.3 Pass A).
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: a Runefile must be a YAML mapping", node.Line)
	}

	var imageNode, pipelineNode *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		val := node.Content[i+1]
		switch key.Value {
		case keyImage:
			imageNode = val
		case keyPipeline:
			pipelineNode = val
		default:
			return fmt.Errorf("line %d: unknown top-level key %q", key.Line, key.Value)
		}
	}

	if imageNode == nil {
		return fmt.Errorf("missing required top-level key %q", keyImage)
	}
	if pipelineNode == nil {
		return fmt.Errorf("missing required top-level key %q", keyPipeline)
	}

	var imageStr string
	if err := imageNode.Decode(&imageStr); err != nil {
		return err
	}
	image, err := path.Parse(imageStr)
	if err != nil {
		return fmt.Errorf("line %d: image: %w", imageNode.Line, err)
	}

	var pipeline map[string]Stage
	if err := pipelineNode.Decode(&pipeline); err != nil {
		return err
	}
	for name := range pipeline {
		if name == "" {
			return fmt.Errorf("line %d: empty stage names are not allowed", pipelineNode.Line)
		}
	}

	d.Image = image
	d.Pipeline = pipeline
	return nil
}

// MarshalYAML renders a Document back to the top-level mapping form,
// letting spec.md §8 invariant 1 (parse round-trip) be checked directly.
func (d Document) MarshalYAML() (interface{}, error) {
	return map[string]interface{}{
		keyImage:    d.Image.String(),
		keyPipeline: d.Pipeline,
	}, nil
}
