// Package permissions declares every administrator route. Routes that are
// registered under the admin group but missing here are refused.
package permissions

import "strings"

// Definition describes one administrator operation.
type Definition struct {
	Key    string
	Method string
	Path   string
	Module string
	Label  string
}

var definitions = []Definition{
	newDefinition("GET", "/api/admin/orders", "orders", "List orders"),
	newDefinition("GET", "/api/admin/reservations", "records", "List reservations"),
	newDefinition("GET", "/api/admin/donations", "records", "List donations"),
	newDefinition("GET", "/api/admin/members", "members", "List members"),
	newDefinition("POST", "/api/admin/products", "products", "Create product"),
	newDefinition("PUT", "/api/admin/products/:id", "products", "Update product"),
	newDefinition("DELETE", "/api/admin/products/:id", "products", "Delete product"),
	newDefinition("POST", "/api/admin/events", "content", "Create event"),
	newDefinition("DELETE", "/api/admin/events/:id", "content", "Delete event"),
	newDefinition("POST", "/api/admin/activities", "content", "Create activity"),
	newDefinition("DELETE", "/api/admin/activities/:id", "content", "Delete activity"),
	newDefinition("POST", "/api/admin/crisis-articles", "content", "Create crisis article"),
	newDefinition("DELETE", "/api/admin/crisis-articles/:id", "content", "Delete crisis article"),
	newDefinition("PUT", "/api/admin/company-info/:section", "content", "Update company info"),
	newDefinition("POST", "/api/admin/upload-image", "images", "Upload image"),
	newDefinition("GET", "/api/admin/settings", "settings", "List settings"),
	newDefinition("PUT", "/api/admin/settings/:key", "settings", "Update setting"),
}

func newDefinition(method, path, module, label string) Definition {
	return Definition{Key: Key(method, path), Method: method, Path: path, Module: module, Label: label}
}

// Key builds the lookup key for a method and route pattern.
func Key(method, path string) string {
	return strings.ToUpper(strings.TrimSpace(method)) + " " + strings.TrimSpace(path)
}

// Definitions returns a copy of all definitions.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// DefinitionMap returns definitions keyed by Key.
func DefinitionMap() map[string]Definition {
	out := make(map[string]Definition, len(definitions))
	for _, def := range definitions {
		out[def.Key] = def
	}
	return out
}
