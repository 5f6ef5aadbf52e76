package service

import (
	"Suivi/types"
	"context"
	"regexp"
	"strings"
)

var _ IResolverService = (*ResolverService)(nil)

type IResolverService interface {
	Resolve(ctx context.Context, q types.TargetQuery) (*types.FollowTarget, error)
}

// externalIDPattern is the shape of organisation ids usable without verification.
var externalIDPattern = regexp.MustCompile(`^[A-Z][0-9]+$`)

type ResolverService struct {
	Directory IDirectoryService
}

// Resolve turns query parameters into exactly one FollowTarget.
func (s *ResolverService) Resolve(ctx context.Context, q types.TargetQuery) (*types.FollowTarget, error) {
	name := strings.TrimSpace(q.Name)
	orgID := strings.TrimSpace(q.OrganisationID)
	tag := strings.TrimSpace(q.FunctionTag)

	present := 0
	for _, v := range []string{name, orgID, tag} {
		if v != "" {
			present++
		}
	}
	switch {
	case present > 1:
		return nil, ErrAmbiguousTarget
	case present == 0:
		return nil, ErrNoTarget
	}

	verify := ParseVerify(q.Verify)
	switch {
	case name != "":
		return s.resolvePerson(ctx, q.Name, name, verify)
	case orgID != "":
		return s.resolveOrganisation(ctx, q.OrganisationID, orgID, verify)
	default:
		return s.resolveTag(ctx, q.FunctionTag, tag, verify)
	}
}

func (s *ResolverService) resolvePerson(ctx context.Context, raw, name string, verify bool) (*types.FollowTarget, error) {
	tokens := strings.Fields(name)
	if len(tokens) < 2 {
		return nil, ErrInvalidPersonName
	}
	label := strings.Join(tokens, " ")
	target := &types.FollowTarget{
		Kind:           types.KindPerson,
		RawInput:       raw,
		CanonicalLabel: label,
		CanonicalID:    label,
	}
	if !verify {
		return target, nil
	}

	// the directory is queried with the whitespace-collapsed name, not the raw input
	matches, err := s.Directory.SearchPerson(ctx, label)
	if err != nil {
		return nil, internalError("person lookup failed", err)
	}
	if len(matches) == 0 {
		return nil, ErrTargetNotFound
	}
	// the directory's order is authoritative: first match wins
	first := matches[0]
	if full := strings.TrimSpace(first.FirstName + " " + first.LastName); full != "" {
		target.CanonicalLabel = full
	}
	target.CanonicalID = target.CanonicalLabel
	if first.ID != "" {
		target.CanonicalID = first.ID
	}
	target.Verified = true
	return target, nil
}

func (s *ResolverService) resolveOrganisation(ctx context.Context, raw, id string, verify bool) (*types.FollowTarget, error) {
	id = strings.ToUpper(id)
	target := &types.FollowTarget{
		Kind:           types.KindOrganisation,
		RawInput:       raw,
		CanonicalLabel: id,
		CanonicalID:    id,
	}
	if !verify {
		if !externalIDPattern.MatchString(id) {
			return nil, ErrVerificationRequired
		}
		return target, nil
	}

	matches, err := s.Directory.SearchOrganisationByExternalID(ctx, id)
	if err != nil {
		return nil, internalError("organisation lookup failed", err)
	}
	switch len(matches) {
	case 0:
		return nil, ErrTargetNotFound
	case 1:
	default:
		return nil, ErrAmbiguousDirectoryMatch
	}

	match := matches[0]
	if match.ID != "" {
		target.CanonicalID = match.ID
	}
	if match.Name != "" {
		target.CanonicalLabel = match.Name
	}
	target.Verified = true
	return target, nil
}

// resolveTag keeps the raw tag as label: there is no tag to display-name mapping yet.
func (s *ResolverService) resolveTag(ctx context.Context, raw, tag string, verify bool) (*types.FollowTarget, error) {
	target := &types.FollowTarget{
		Kind:           types.KindFunctionTag,
		RawInput:       raw,
		CanonicalLabel: tag,
		CanonicalID:    tag,
	}
	if !verify {
		return target, nil
	}

	matches, err := s.Directory.SearchTag(ctx, tag)
	if err != nil {
		return nil, internalError("tag lookup failed", err)
	}
	if len(matches) == 0 {
		return nil, ErrTargetNotFound
	}
	target.Verified = true
	return target, nil
}

// ParseVerify reads the boolean-ish verify parameter; anything unrecognised keeps the default (true).
func ParseVerify(raw string) bool {
	return parseFlag(raw, true)
}
