package draw

import (
	"context"
	"sort"

	"github.com/mokutan/stagepass/internal/common/clock"
	"github.com/mokutan/stagepass/internal/models"
	songRepo "github.com/mokutan/stagepass/internal/repositories/song"
	stateRepo "github.com/mokutan/stagepass/internal/repositories/state"
	"github.com/mokutan/stagepass/internal/rng"
)

// service implements the Service interface
type service struct {
	config    *Config
	songRepo  songRepo.Repository
	stateRepo stateRepo.Repository
	clock     clock.Clock
	sampler   rng.Sampler
	notifier  Notifier
}

// NewService creates a new draw service; notifier may be nil
func NewService(cfg *Config, songs songRepo.Repository, states stateRepo.Repository, clk clock.Clock, sampler rng.Sampler, notifier Notifier) (*service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if songs == nil {
		return nil, ErrNilSongRepo
	}
	if states == nil {
		return nil, ErrNilStateRepo
	}
	if clk == nil {
		return nil, ErrNilClock
	}
	if sampler == nil {
		return nil, ErrNilSampler
	}

	return &service{
		config:    cfg,
		songRepo:  songs,
		stateRepo: states,
		clock:     clk,
		sampler:   sampler,
		notifier:  notifier,
	}, nil
}

// SetNotifier wires the display push after construction
func (s *service) SetNotifier(n Notifier) {
	s.notifier = n
}

func (s *service) notify(out *GetStateOutput) {
	if s.notifier != nil {
		s.notifier.DrawStateChanged(out)
	}
}

// activePool lists the phase/group's drawable songs in a stable order, so the
// sampler's indices are the only source of randomness
func (s *service) activePool(ctx context.Context, phase models.Phase, group models.Group) ([]*models.Song, error) {
	pool, err := s.songRepo.ListSongs(ctx, &songRepo.ListSongsInput{
		Phase:      phase,
		Group:      group,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(pool, func(i, j int) bool {
		if pool[i].Name != pool[j].Name {
			return pool[i].Name < pool[j].Name
		}
		return pool[i].ID < pool[j].ID
	})

	return pool, nil
}

// Start begins a roll over a phase/group's active song pool
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	pool, err := s.activePool(ctx, input.Phase, input.Group)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrNoSongsConfigured
	}

	st := &models.SongDrawState{
		Status:    models.DrawStatusRolling,
		Phase:     input.Phase,
		Group:     input.Group,
		UpdatedAt: s.clock.Now(),
	}

	if err := s.stateRepo.SaveSongDrawState(ctx, &stateRepo.SaveSongDrawStateInput{
		State: st,
	}); err != nil {
		return nil, err
	}

	s.notify(&GetStateOutput{State: st})

	return &StartOutput{State: st}, nil
}

// Stop freezes the roll into one or two drawn songs
func (s *service) Stop(ctx context.Context) (*StopOutput, error) {
	st, err := s.stateRepo.GetSongDrawState(ctx)
	if err != nil {
		return nil, err
	}

	if st.Status != models.DrawStatusRolling {
		return nil, ErrDrawNotRolling
	}

	pool, err := s.activePool(ctx, st.Phase, st.Group)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrNoSongsConfigured
	}

	k := s.config.MaxSongs
	if k > len(pool) {
		k = len(pool)
	}

	drawn := make([]*models.Song, 0, k)
	ids := make([]string, 0, k)
	for _, idx := range s.sampler.Sample(len(pool), k) {
		drawn = append(drawn, pool[idx])
		ids = append(ids, pool[idx].ID)
	}

	st.Status = models.DrawStatusFinished
	st.SelectedSongIDs = ids
	st.UpdatedAt = s.clock.Now()

	if err := s.stateRepo.SaveSongDrawState(ctx, &stateRepo.SaveSongDrawStateInput{
		State: st,
	}); err != nil {
		return nil, err
	}

	s.notify(&GetStateOutput{State: st, Songs: drawn})

	return &StopOutput{
		State: st,
		Songs: drawn,
	}, nil
}

// Reset returns the lottery to idle
func (s *service) Reset(ctx context.Context) error {
	st := &models.SongDrawState{
		Status:    models.DrawStatusIdle,
		UpdatedAt: s.clock.Now(),
	}

	if err := s.stateRepo.SaveSongDrawState(ctx, &stateRepo.SaveSongDrawStateInput{
		State: st,
	}); err != nil {
		return err
	}

	s.notify(&GetStateOutput{State: st})

	return nil
}

// GetState returns the lottery state with drawn songs resolved
func (s *service) GetState(ctx context.Context) (*GetStateOutput, error) {
	st, err := s.stateRepo.GetSongDrawState(ctx)
	if err != nil {
		return nil, err
	}

	out := &GetStateOutput{State: st}
	for _, id := range st.SelectedSongIDs {
		sg, err := s.songRepo.GetSong(ctx, &songRepo.GetSongInput{
			SongID: id,
		})
		if err != nil {
			return nil, err
		}
		out.Songs = append(out.Songs, sg)
	}

	return out, nil
}
