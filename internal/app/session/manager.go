// Package session provides the player session manager. It resolves catalog
// lookups into controller calls and turns controller events into notifications.
package session

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/19player/internal/app/catalog"
	"github.com/osa030/19player/internal/app/entitlement"
	"github.com/osa030/19player/internal/app/filter"
	"github.com/osa030/19player/internal/app/library"
	"github.com/osa030/19player/internal/app/notification"
	"github.com/osa030/19player/internal/app/playback"
	"github.com/osa030/19player/internal/domain/album"
	"github.com/osa030/19player/internal/domain/track"
	playerv1 "github.com/osa030/19player/internal/gen/player/v1"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrClosed          = errors.New("session is closed")
)

// ContextKind names the collection a track is played from.
type ContextKind string

const (
	ContextNone   ContextKind = ""
	ContextAlbum  ContextKind = "album"
	ContextArtist ContextKind = "artist"
	ContextGenre  ContextKind = "genre"
	ContextLiked  ContextKind = "liked"
	ContextTracks ContextKind = "tracks"
)

// QueueContext describes the queue a track should be played within.
// For album, artist and genre an empty ID means the played track's own.
type QueueContext struct {
	Kind     ContextKind
	ID       string
	TrackIDs []string // Used by ContextTracks
}

// Manager manages the player session.
type Manager struct {
	mu sync.RWMutex

	// Components
	playback     *playback.Controller
	catalog      catalog.Catalog
	library      *library.Library
	entitlement  entitlement.Source
	filterChain  *filter.Chain
	notification *notification.Manager

	// Liked track IDs, mirrored from the library
	liked map[string]struct{}

	started   bool
	closed    bool
	closeOnce sync.Once
	done      chan struct{}
}

// NewManager creates a session manager around a controller. The liked set is
// loaded from the library once; later changes go through ToggleLike.
// A nil filter chain queues every resolved track.
func NewManager(
	ctx context.Context,
	controller *playback.Controller,
	cat catalog.Catalog,
	lib *library.Library,
	source entitlement.Source,
	filters *filter.Chain,
) (*Manager, error) {
	if filters == nil {
		filters = filter.NewChain()
	}

	ids, err := lib.LikedIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load liked tracks")
	}

	m := &Manager{
		playback:     controller,
		catalog:      cat,
		library:      lib,
		entitlement:  source,
		filterChain:  filters,
		notification: notification.NewManager(),
		liked:        make(map[string]struct{}, len(ids)),
		done:         make(chan struct{}),
	}
	for _, id := range ids {
		m.liked[id] = struct{}{}
	}
	return m, nil
}

// Start begins forwarding controller events to subscribers.
func (m *Manager) Start() {
	m.mu.Lock()
	if m.started || m.closed {
		m.mu.Unlock()
		return
	}
	m.started = true
	m.mu.Unlock()

	zlog.Info().Msgf("session: started catalog=%s entitlement=%s liked=%d filters=%d",
		m.catalog.Name(), m.entitlementName(), m.likedCount(), len(m.filterChain.Filters()))
	go m.eventLoop()
}

// Done is closed once the event loop has exited after Close.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Playback returns the controller for transport calls that need no catalog lookup.
func (m *Manager) Playback() *playback.Controller {
	return m.playback
}

// GetNotificationManager returns the notification manager.
func (m *Manager) GetNotificationManager() *notification.Manager {
	return m.notification
}

// Entitlement returns the entitlement source.
func (m *Manager) Entitlement() entitlement.Source {
	return m.entitlement
}

// PlayTrack resolves the track and its queue context and starts playback.
func (m *Manager) PlayTrack(ctx context.Context, trackID string, qc QueueContext) error {
	if err := m.checkOpen(); err != nil {
		return err
	}
	if trackID == "" {
		return errors.Wrap(ErrInvalidArgument, "track id is required")
	}

	t, err := m.catalog.Track(ctx, trackID)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve track %s", trackID)
	}

	queue, err := m.resolveContext(ctx, *t, qc)
	if err != nil {
		return err
	}

	zlog.Info().Msgf("session: play track=%s context=%s queue_size=%d", t.ID, contextLabel(qc), len(queue))
	m.playback.PlayTrack(*t, queue)
	return nil
}

// PlayAlbum plays the album from its first track.
func (m *Manager) PlayAlbum(ctx context.Context, albumID string) error {
	if err := m.checkOpen(); err != nil {
		return err
	}
	if albumID == "" {
		return errors.Wrap(ErrInvalidArgument, "album id is required")
	}

	tracks, err := m.catalog.AlbumTracks(ctx, albumID)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve album %s", albumID)
	}
	tracks = m.filterChain.Apply(ctx, tracks, "")
	if len(tracks) == 0 {
		return errors.Wrapf(catalog.ErrNotFound, "album %s has no playable tracks", albumID)
	}

	zlog.Info().Msgf("session: play album=%s tracks=%d", albumID, len(tracks))
	m.playback.PlayTrack(tracks[0], tracks)
	return nil
}

// AddToQueue appends the track to the end of the queue.
func (m *Manager) AddToQueue(ctx context.Context, trackID string) error {
	if err := m.checkOpen(); err != nil {
		return err
	}
	if trackID == "" {
		return errors.Wrap(ErrInvalidArgument, "track id is required")
	}

	t, err := m.catalog.Track(ctx, trackID)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve track %s", trackID)
	}

	if result := m.filterChain.Execute(ctx, *t, m.playback.Status().Queue, filter.OriginAdded); !result.Accepted {
		zlog.Info().Msgf("session: queue add rejected track=%s code=%s", t.ID, result.Code)
		return errors.Wrapf(filter.ErrRejected, "track %s: %s", t.ID, result.Code)
	}
	m.playback.AddToQueue(*t)
	return nil
}

// ToggleLike flips the liked state of a catalog track and returns the new state.
func (m *Manager) ToggleLike(ctx context.Context, trackID string) (bool, error) {
	if err := m.checkOpen(); err != nil {
		return false, err
	}
	if trackID == "" {
		return false, errors.Wrap(ErrInvalidArgument, "track id is required")
	}
	if _, err := m.catalog.Track(ctx, trackID); err != nil {
		return false, errors.Wrapf(err, "failed to resolve track %s", trackID)
	}

	liked, err := m.library.ToggleLike(ctx, trackID)
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	if liked {
		m.liked[trackID] = struct{}{}
	} else {
		delete(m.liked, trackID)
	}
	m.mu.Unlock()

	zlog.Info().Msgf("session: like toggled track=%s liked=%t", trackID, liked)
	m.notification.Broadcast(&playerv1.Notification{
		Type:    playerv1.NotificationType_NOTIFICATION_TYPE_LIBRARY_CHANGED,
		TrackId: trackID,
		Liked:   liked,
		Status:  m.Status(),
	})
	return liked, nil
}

// IsLiked reports whether the track is liked.
func (m *Manager) IsLiked(trackID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.liked[trackID]
	return ok
}

// LikedTracks returns the liked tracks in like order. Tracks that are no
// longer in the catalog are skipped.
func (m *Manager) LikedTracks(ctx context.Context) ([]track.Track, error) {
	ids, err := m.library.LikedIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []track.Track{}, nil
	}
	tracks, err := m.catalog.Tracks(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve liked tracks")
	}
	return tracks, nil
}

// Album returns a catalog album.
func (m *Manager) Album(ctx context.Context, albumID string) (*album.Album, error) {
	if albumID == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "album id is required")
	}
	a, err := m.catalog.Album(ctx, albumID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve album %s", albumID)
	}
	return a, nil
}

// Status returns the current player status.
func (m *Manager) Status() *playerv1.PlayerStatus {
	return m.buildStatus(m.playback.Status())
}

// EntitlementChanged tells subscribers that the entitlement source changed.
// Playback is paused when the listener is no longer entitled.
func (m *Manager) EntitlementChanged() {
	entitled := m.isEntitled()
	if !entitled && m.playback.Status().IsPlaying {
		m.playback.Pause()
	}

	zlog.Info().Msgf("session: entitlement changed source=%s entitled=%t", m.entitlementName(), entitled)
	m.notification.Broadcast(&playerv1.Notification{
		Type:   playerv1.NotificationType_NOTIFICATION_TYPE_ENTITLEMENT_CHANGED,
		Status: m.Status(),
	})
}

// Close stops the controller and waits for the event loop to drain.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		started := m.started
		m.mu.Unlock()

		m.playback.Close()
		if started {
			<-m.done
		} else {
			close(m.done)
		}
		m.notification.Close()
		zlog.Info().Msg("session: closed")
	})
}

// eventLoop forwards controller events until the controller closes its channel.
func (m *Manager) eventLoop() {
	defer close(m.done)

	for ev := range m.playback.Events() {
		m.handlePlaybackEvent(ev)
	}
}

func (m *Manager) handlePlaybackEvent(ev playback.Event) {
	if ev.Type != playback.EventProgress {
		zlog.Debug().Msgf("session: playback event type=%s state=%s", ev.Type, ev.Status.State)
	}

	n := &playerv1.Notification{
		Type:   notificationType(ev.Type),
		Status: m.buildStatus(ev.Status),
	}
	if ev.Status.CurrentTrack != nil {
		n.TrackId = ev.Status.CurrentTrack.ID
	}
	m.notification.Broadcast(n)
}

// resolveContext returns the queue for t under qc. A nil result means t alone.
func (m *Manager) resolveContext(ctx context.Context, t track.Track, qc QueueContext) ([]track.Track, error) {
	var (
		tracks []track.Track
		err    error
	)

	switch qc.Kind {
	case ContextNone:
		return nil, nil
	case ContextAlbum:
		tracks, err = m.catalog.AlbumTracks(ctx, firstNonEmpty(qc.ID, t.AlbumID))
	case ContextArtist:
		tracks, err = m.catalog.ArtistTracks(ctx, firstNonEmpty(qc.ID, t.ArtistID))
	case ContextGenre:
		tracks, err = m.catalog.GenreTracks(ctx, firstNonEmpty(qc.ID, t.Genre))
	case ContextLiked:
		tracks, err = m.LikedTracks(ctx)
	case ContextTracks:
		if len(qc.TrackIDs) == 0 {
			return nil, errors.Wrap(ErrInvalidArgument, "track ids are required for a tracks context")
		}
		tracks, err = m.catalog.Tracks(ctx, qc.TrackIDs)
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown queue context %q", qc.Kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s context", qc.Kind)
	}
	return m.filterChain.Apply(ctx, tracks, t.ID), nil
}

func (m *Manager) checkOpen() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrClosed
	}
	return nil
}

func (m *Manager) isEntitled() bool {
	return m.entitlement != nil && m.entitlement.IsEntitled()
}

func (m *Manager) entitlementName() string {
	if m.entitlement == nil {
		return "none"
	}
	return m.entitlement.Name()
}

func (m *Manager) likedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.liked)
}

func contextLabel(qc QueueContext) string {
	if qc.Kind == ContextNone {
		return "none"
	}
	if qc.ID == "" {
		return string(qc.Kind)
	}
	return string(qc.Kind) + ":" + qc.ID
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
