package config

// Messenger is one messaging app the landing page can deep-link into.
type Messenger struct {
	Name     string `json:"name" yaml:"name"`
	Label    string `json:"label" yaml:"label"`
	LinkBase string `json:"link_base" yaml:"link_base"`
	// SearchVerbOnly rewrites Suivre* commands to Rechercher in this messenger's deep link.
	SearchVerbOnly bool `json:"search_verb_only" yaml:"search_verb_only"`
}

func (m *Messenger) Configured() bool {
	return m != nil && m.LinkBase != ""
}
