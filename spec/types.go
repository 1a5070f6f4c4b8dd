// Package spec holds the data contracts shared between the VS Write host
// and its extensions: entity/section/tag records, the injected
// ExtensionContext capability interface, hook and tool handler signatures,
// and the extension manifest format.
package spec

// Entity type names as stored by the host. Entity.Type always holds one of
// these values (or a host-defined custom value, reported as "custom").
const (
	EntityTypeCharacter = "character"
	EntityTypeLocation  = "location"
	EntityTypeConcept   = "concept"
	EntityTypeItem      = "item"
	EntityTypeRule      = "rule"
	EntityTypeCustom    = "custom"
)

// EntityTypes returns all entity type names in canonical display order.
func EntityTypes() []string {
	return []string{
		EntityTypeCharacter,
		EntityTypeLocation,
		EntityTypeConcept,
		EntityTypeItem,
		EntityTypeRule,
		EntityTypeCustom,
	}
}

// Entity is a world-building record owned by the host (character, location,
// concept, ...). Extensions only ever read entities.
type Entity struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Aliases     []string       `json:"aliases"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Tag links a character range of a section to an entity.
// Invariant: From <= To.
type Tag struct {
	ID       string `json:"id"`
	EntityID string `json:"entityId"`
	From     int64  `json:"from"`
	To       int64  `json:"to"`
}

// Section is one document of the manuscript, ordered by Order.
type Section struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Order     int64    `json:"order"`
	Content   string   `json:"content"`
	ParentID  string   `json:"parentId,omitempty"`
	EntityIDs []string `json:"entityIds,omitempty"`
	Tags      []Tag    `json:"tags,omitempty"`
}

// Project is the host project record passed to project lifecycle hooks.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
}

// EntityRelationships is an entity together with every section that
// references it (via EntityIDs or a tag).
type EntityRelationships struct {
	Entity   *Entity   `json:"entity"`
	Sections []Section `json:"sections"`
}
