package promptxml

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/vswrite/extensions-go/spec"
)

type availableTools struct {
	XMLName xml.Name        `xml:"available_tools"`
	Tools   []availableTool `xml:"tool"`
}

type availableTool struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
	Schema      string `xml:",cdata"`
}

// AvailableToolsStruct builds the <available_tools> document for the
// given manifests. Tool names are qualified as "<ext-id>:<tool>" and
// sorted; when includeSchema is false the schema CDATA is omitted.
func AvailableToolsStruct(manifests []spec.ExtensionManifest, includeSchema bool) any {
	out := availableTools{}
	for _, m := range manifests {
		for _, t := range m.Tools {
			it := availableTool{
				Name:        m.ID + ":" + t.Name,
				Description: t.Description,
			}
			if includeSchema && len(t.Schema) > 0 {
				it.Schema = string(t.Schema)
			}
			out.Tools = append(out.Tools, it)
		}
	}
	sort.Slice(out.Tools, func(i, j int) bool { return out.Tools[i].Name < out.Tools[j].Name })
	return out
}

func AvailableToolsXML(manifests []spec.ExtensionManifest, includeSchema bool) (string, error) {
	v := AvailableToolsStruct(manifests, includeSchema)
	b, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("xml encode: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
