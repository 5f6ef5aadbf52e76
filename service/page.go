package service

import (
	"Suivi/config"
	"Suivi/pkg/assets"
	"Suivi/pkg/log"
	"Suivi/pkg/tmpl"
	"Suivi/types"
	"fmt"
	"html"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Command verbs understood by the messaging bots.
const (
	VerbSearch             = "Rechercher"
	VerbFollowOrganisation = "SuivreO"
	VerbFollowTag          = "SuivreF"
)

const (
	SlotTitle       = "TITLE"
	SlotFollowLabel = "FOLLOW_LABEL"
	SlotBaseURL     = "BASE_URL"
	SlotCommand     = "COMMAND"
	SlotQRURL       = "QR_URL"
)

// knownMessengers always have a block slot, configured or not.
var knownMessengers = []string{"whatsapp", "telegram", "signal"}

var _ IPageService = (*PageService)(nil)

type IPageService interface {
	Render(target *types.FollowTarget) ([]byte, error)
	// FallbackURL is where requests without a target are sent.
	FallbackURL() string
}

type PageService struct {
	config   *config.Config
	template *tmpl.Template
}

func NewPageService(cfg *config.Config, bundle *assets.Bundle) (*PageService, error) {
	slots := []tmpl.Slot{
		tmpl.Required(SlotTitle),
		tmpl.Required(SlotFollowLabel),
		tmpl.Required(SlotCommand),
		tmpl.Optional(SlotBaseURL),
		tmpl.Optional(SlotQRURL),
	}
	declared := map[string]bool{}
	for _, name := range knownMessengers {
		slots = append(slots, tmpl.RawOptional(blockSlot(name)))
		declared[name] = true
	}
	for _, m := range cfg.Messengers {
		if m != nil && !declared[m.Name] {
			slots = append(slots, tmpl.RawOptional(blockSlot(m.Name)))
			declared[m.Name] = true
		}
	}

	t, err := tmpl.Parse(bundle.Template, slots...)
	if err != nil {
		return nil, fmt.Errorf("landing page template: %w", err)
	}
	for _, m := range cfg.Messengers {
		if m.Configured() && !strings.Contains(bundle.Template, "{"+blockSlot(m.Name)+"}") {
			log.L.Warn("messenger has no block in landing page template", zap.String("messenger", m.Name))
		}
	}
	return &PageService{config: cfg, template: t}, nil
}

func (s *PageService) FallbackURL() string {
	return s.config.App.MarketingURL
}

func (s *PageService) Render(target *types.FollowTarget) ([]byte, error) {
	if target == nil {
		return nil, ErrNoTarget
	}
	base := strings.TrimRight(s.config.App.BaseURL, "/")
	command := Command(target)

	b := tmpl.Bindings{
		SlotTitle:       fmt.Sprintf("%s | Suivre %s", s.config.App.PageTitle, target.CanonicalLabel),
		SlotFollowLabel: target.CanonicalLabel,
		SlotBaseURL:     base,
		SlotCommand:     command,
		SlotQRURL:       base + "/qrcode?" + targetValues(target).Encode(),
	}
	for _, m := range s.config.Messengers {
		if m.Configured() {
			b[blockSlot(m.Name)] = messengerBlock(m, command)
		}
	}

	out, err := s.template.Render(b)
	if err != nil {
		return nil, internalError("render landing page", err)
	}
	return out, nil
}

func blockSlot(messenger string) string {
	return strings.ToUpper(messenger) + "_BLOCK"
}

func messengerBlock(m *config.Messenger, command string) string {
	text := DeepLinkCommand(command, m.SearchVerbOnly)
	href := DeepLink(m, command)
	label := m.Label
	if label == "" {
		label = m.Name
	}
	return fmt.Sprintf(`<a class="messenger messenger-%s" href="%s">%s<span class="command">%s</span></a>`,
		html.EscapeString(m.Name), html.EscapeString(href), html.EscapeString(label), html.EscapeString(text))
}

// DeepLink is the messenger link base followed by the percent-encoded command.
func DeepLink(m *config.Messenger, command string) string {
	text := DeepLinkCommand(command, m.SearchVerbOnly)
	return m.LinkBase + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

func Verb(kind types.TargetKind) string {
	switch kind {
	case types.KindOrganisation:
		return VerbFollowOrganisation
	case types.KindFunctionTag:
		return VerbFollowTag
	default:
		return VerbSearch
	}
}

// Command is "<Verb> <input>": the label for people, the id for organisations, the tag for tags.
func Command(t *types.FollowTarget) string {
	return Verb(t.Kind) + " " + commandInput(t)
}

// DeepLinkCommand rewrites Suivre* verbs to Rechercher for messengers that only search.
func DeepLinkCommand(command string, searchOnly bool) string {
	if !searchOnly {
		return command
	}
	verb, rest, _ := strings.Cut(command, " ")
	if strings.HasPrefix(verb, "Suivre") {
		return VerbSearch + " " + rest
	}
	return command
}

func commandInput(t *types.FollowTarget) string {
	if t.Kind == types.KindOrganisation {
		return t.CanonicalID
	}
	return t.CanonicalLabel
}

func targetValues(t *types.FollowTarget) url.Values {
	v := url.Values{}
	v.Set(t.Kind.Param(), commandInput(t))
	if !t.Verified {
		v.Set(types.ParamVerify, "false")
	}
	return v
}

// FollowURL is the landing page address encoded in the QR code, already percent-encoded.
func FollowURL(baseURL string, t *types.FollowTarget) string {
	return strings.TrimRight(baseURL, "/") + "/follow?" + targetValues(t).Encode()
}
