package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/mokutan/stagepass/internal/common/clock"
	"github.com/mokutan/stagepass/internal/common/uuid"
	"github.com/mokutan/stagepass/internal/models"
	songRepo "github.com/mokutan/stagepass/internal/repositories/song"
)

type service struct {
	songRepo songRepo.Repository
	clock    clock.Clock
	uuider   uuid.UUID
}

// NewService creates a new catalog service
func NewService(songs songRepo.Repository, clk clock.Clock, uuidGen uuid.UUID) (*service, error) {
	if songs == nil {
		return nil, ErrNilSongRepo
	}
	if clk == nil {
		return nil, ErrNilClock
	}
	if uuidGen == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		songRepo: songs,
		clock:    clk,
		uuider:   uuidGen,
	}, nil
}

func (s *service) AddSong(ctx context.Context, input *AddSongInput) (*AddSongOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	song := &models.Song{
		ID:        s.uuider.NewUUID(),
		Name:      name,
		Phase:     input.Phase,
		Group:     input.Group,
		Active:    true,
		CreatedAt: s.clock.Now(),
	}

	if err := s.songRepo.SaveSong(ctx, &songRepo.SaveSongInput{Song: song}); err != nil {
		return nil, err
	}

	return &AddSongOutput{Song: song}, nil
}

func (s *service) ListSongs(ctx context.Context, input *ListSongsInput) (*ListSongsOutput, error) {
	songs, err := s.songRepo.ListSongs(ctx, &songRepo.ListSongsInput{
		Phase:      input.Phase,
		Group:      input.Group,
		ActiveOnly: input.ActiveOnly,
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(songs, func(i, j int) bool {
		if songs[i].Name != songs[j].Name {
			return songs[i].Name < songs[j].Name
		}
		return songs[i].ID < songs[j].ID
	})

	return &ListSongsOutput{Songs: songs}, nil
}

func (s *service) SetSongActive(ctx context.Context, input *SetSongActiveInput) (*SetSongActiveOutput, error) {
	song, err := s.songRepo.GetSong(ctx, &songRepo.GetSongInput{SongID: input.SongID})
	if err != nil {
		if err == songRepo.ErrSongNotFound {
			return nil, ErrSongNotFound
		}
		return nil, err
	}

	song.Active = input.Active
	if err := s.songRepo.SaveSong(ctx, &songRepo.SaveSongInput{Song: song}); err != nil {
		return nil, err
	}

	return &SetSongActiveOutput{Song: song}, nil
}

func (s *service) DeleteSong(ctx context.Context, input *DeleteSongInput) error {
	if _, err := s.songRepo.GetSong(ctx, &songRepo.GetSongInput{SongID: input.SongID}); err != nil {
		if err == songRepo.ErrSongNotFound {
			return ErrSongNotFound
		}
		return err
	}

	return s.songRepo.DeleteSong(ctx, &songRepo.DeleteSongInput{SongID: input.SongID})
}
