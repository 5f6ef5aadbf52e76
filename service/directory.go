package service

import (
	"Suivi/dao/cache"
	"Suivi/pkg/directory"
	"Suivi/types"
	"context"
)

var _ IDirectoryService = (*DirectoryService)(nil)

// IDirectoryService is the directory boundary used by the resolver.
// Result order is the directory's relevance order and must be kept.
type IDirectoryService interface {
	SearchPerson(ctx context.Context, rawName string) ([]types.DirectoryMatch, error)
	SearchOrganisationByExternalID(ctx context.Context, id string) ([]types.DirectoryMatch, error)
	SearchTag(ctx context.Context, tag string) ([]types.DirectoryMatch, error)
}

type DirectoryService struct {
	Client *directory.Client
	Store  cache.DirectoryStore
}

func (s *DirectoryService) SearchPerson(ctx context.Context, rawName string) ([]types.DirectoryMatch, error) {
	return s.cached(ctx, types.KindPerson, rawName, s.Client.SearchPerson)
}

func (s *DirectoryService) SearchOrganisationByExternalID(ctx context.Context, id string) ([]types.DirectoryMatch, error) {
	return s.cached(ctx, types.KindOrganisation, id, s.Client.SearchOrganisationByExternalID)
}

func (s *DirectoryService) SearchTag(ctx context.Context, tag string) ([]types.DirectoryMatch, error) {
	return s.cached(ctx, types.KindFunctionTag, tag, s.Client.SearchTag)
}

type searchFunc func(ctx context.Context, query string) ([]types.DirectoryMatch, error)

func (s *DirectoryService) cached(ctx context.Context, kind types.TargetKind, query string, search searchFunc) ([]types.DirectoryMatch, error) {
	if s.Store != nil {
		if matches, ok := s.Store.Get(ctx, kind.String(), query); ok {
			return matches, nil
		}
	}
	matches, err := search(ctx, query)
	if err != nil {
		return nil, err
	}
	if s.Store != nil {
		s.Store.Set(ctx, kind.String(), query, matches)
	}
	return matches, nil
}
