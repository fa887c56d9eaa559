// Package guidance holds the static disposal-guidance table for items that
// are not worth relisting. The table is embedded configuration data keyed by
// lower-cased category name; unrecognized categories fall back to the
// default entry.
package guidance

import "strings"

// Entry is the disposal advice for one item category.
type Entry struct {
	Methods []string
	Tip     string
	Warning string
}

// Result is the guidance response for a lookup.
type Result struct {
	Item            string   `json:"item"`
	Category        string   `json:"category"`
	DisposalMethods []string `json:"disposal_methods"`
	Tips            string   `json:"tips"`
	Warnings        string   `json:"warnings"`
}

var table = map[string]Entry{
	"electronics": {
		Methods: []string{"E-waste recycling centers", "Manufacturer take-back programs", "Best Buy recycling"},
		Tip:     "Remove personal data before disposal. Many electronics contain valuable materials that can be recycled.",
		Warning: "Never throw electronics in regular trash - they contain toxic materials.",
	},
	"furniture": {
		Methods: []string{"Donation centers", "Habitat for Humanity ReStore", "Bulk trash pickup"},
		Tip:     "Check with local charities first. Many furniture pieces can be refurbished.",
		Warning: "Large furniture may require special pickup arrangements.",
	},
	"clothing": {
		Methods: []string{"Textile recycling bins", "Goodwill", "H&M recycling program"},
		Tip:     "Even damaged clothing can often be recycled into new textiles.",
		Warning: "Don't throw textiles in regular trash - they can be recycled even if not wearable.",
	},
	"appliances": {
		Methods: []string{"Appliance stores (when buying new)", "Scrap metal recycling", "Municipal pickup"},
		Tip:     "Many retailers will haul away old appliances when delivering new ones.",
		Warning: "Refrigerators and air conditioners need special handling for refrigerants.",
	},
	"books": {
		Methods: []string{"Libraries", "Schools", "Little Free Libraries", "Paper recycling"},
		Tip:     "Consider donating to schools or libraries first. Even damaged books can be recycled.",
		Warning: "Remove any personal information before donating.",
	},
	"default": {
		Methods: []string{"Check local recycling guidelines", "Contact waste management", "Search Earth911.com"},
		Tip:     "When in doubt, contact your local waste management authority for guidance.",
		Warning: "Research proper disposal methods to avoid environmental harm.",
	},
}

// Lookup returns disposal guidance for the given item and category. The
// category match is case-insensitive; the returned category keeps the
// caller's original casing. Lookup is pure and cannot fail.
func Lookup(itemName, category string) Result {
	entry, ok := table[strings.ToLower(category)]
	if !ok {
		entry = table["default"]
	}

	return Result{
		Item:            itemName,
		Category:        category,
		DisposalMethods: entry.Methods,
		Tips:            entry.Tip,
		Warnings:        entry.Warning,
	}
}
