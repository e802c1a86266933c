package connect

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/19player/internal/app/catalog"
	"github.com/osa030/19player/internal/app/filter"
	"github.com/osa030/19player/internal/app/session"
	playerv1 "github.com/osa030/19player/internal/gen/player/v1"
	"github.com/osa030/19player/internal/gen/player/v1/playerv1connect"
)

// PlayerService implements the PlayerService RPC.
type PlayerService struct {
	session *session.Manager
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(session *session.Manager) *PlayerService {
	return &PlayerService{session: session}
}

// Ensure PlayerService implements the interface.
var _ playerv1connect.PlayerServiceHandler = (*PlayerService)(nil)

// PlayTrack plays a catalog track within an optional queue context.
func (s *PlayerService) PlayTrack(
	ctx context.Context,
	req *connect.Request[playerv1.PlayTrackRequest],
) (*connect.Response[playerv1.StatusResponse], error) {
	if err := s.session.PlayTrack(ctx, req.Msg.TrackId, queueContextFromWire(req.Msg.Context)); err != nil {
		return nil, toConnectError(err)
	}
	return s.status(), nil
}

// PlayAlbum plays an album from its first track.
func (s *PlayerService) PlayAlbum(
	ctx context.Context,
	req *connect.Request[playerv1.PlayAlbumRequest],
) (*connect.Response[playerv1.StatusResponse], error) {
	if err := s.session.PlayAlbum(ctx, req.Msg.AlbumId); err != nil {
		return nil, toConnectError(err)
	}
	return s.status(), nil
}

// Play resumes playback.
func (s *PlayerService) Play(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	s.session.Playback().Play()
	return s.status(), nil
}

// Pause pauses playback.
func (s *PlayerService) Pause(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	s.session.Playback().Pause()
	return s.status(), nil
}

// TogglePlay toggles between playing and paused.
func (s *PlayerService) TogglePlay(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	s.session.Playback().TogglePlay()
	return s.status(), nil
}

// Stop pauses playback and rewinds the current track.
func (s *PlayerService) Stop(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	s.session.Playback().Stop()
	return s.status(), nil
}

// Next skips to the next queued track.
func (s *PlayerService) Next(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	s.session.Playback().Next()
	return s.status(), nil
}

// Previous restarts the track or moves to the previous one.
func (s *PlayerService) Previous(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	s.session.Playback().Previous()
	return s.status(), nil
}

// Seek moves the playback position.
func (s *PlayerService) Seek(
	ctx context.Context,
	req *connect.Request[playerv1.SeekRequest],
) (*connect.Response[playerv1.StatusResponse], error) {
	s.session.Playback().Seek(time.Duration(req.Msg.PositionMs) * time.Millisecond)
	return s.status(), nil
}

// SetVolume sets the output level. Out of range levels are clamped.
func (s *PlayerService) SetVolume(
	ctx context.Context,
	req *connect.Request[playerv1.SetVolumeRequest],
) (*connect.Response[playerv1.StatusResponse], error) {
	s.session.Playback().SetVolume(req.Msg.Level)
	return s.status(), nil
}

// ToggleMute toggles mute.
func (s *PlayerService) ToggleMute(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	s.session.Playback().ToggleMute()
	return s.status(), nil
}

// AddToQueue appends a catalog track to the queue.
func (s *PlayerService) AddToQueue(
	ctx context.Context,
	req *connect.Request[playerv1.AddToQueueRequest],
) (*connect.Response[playerv1.StatusResponse], error) {
	if err := s.session.AddToQueue(ctx, req.Msg.TrackId); err != nil {
		return nil, toConnectError(err)
	}
	return s.status(), nil
}

// ClearQueue empties the queue.
func (s *PlayerService) ClearQueue(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	s.session.Playback().ClearQueue()
	return s.status(), nil
}

// SetExpandedView sets the full-screen player flag.
func (s *PlayerService) SetExpandedView(
	ctx context.Context,
	req *connect.Request[playerv1.SetExpandedViewRequest],
) (*connect.Response[playerv1.StatusResponse], error) {
	s.session.Playback().SetExpandedView(req.Msg.Expanded)
	return s.status(), nil
}

// ToggleExpandedView toggles the full-screen player flag.
func (s *PlayerService) ToggleExpandedView(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	s.session.Playback().ToggleExpandedView()
	return s.status(), nil
}

// DismissUpsell hides the upsell prompt.
func (s *PlayerService) DismissUpsell(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	s.session.Playback().DismissUpsell()
	return s.status(), nil
}

// GetStatus returns the player status.
func (s *PlayerService) GetStatus(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	return s.status(), nil
}

// GetAlbum returns a catalog album with its tracks.
func (s *PlayerService) GetAlbum(
	ctx context.Context,
	req *connect.Request[playerv1.GetAlbumRequest],
) (*connect.Response[playerv1.GetAlbumResponse], error) {
	a, err := s.session.Album(ctx, req.Msg.AlbumId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.GetAlbumResponse{
		Album: s.session.BuildAlbumInfo(a),
	}), nil
}

// GetArtist returns an artist with its albums and tracks.
func (s *PlayerService) GetArtist(
	ctx context.Context,
	req *connect.Request[playerv1.GetArtistRequest],
) (*connect.Response[playerv1.GetArtistResponse], error) {
	page, err := s.session.Artist(ctx, req.Msg.ArtistId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.GetArtistResponse{
		Artist: session.BuildArtistInfo(page.Artist),
		Albums: s.session.BuildAlbumList(page.Albums),
		Tracks: s.session.BuildTrackList(page.Tracks),
	}), nil
}

// GetGenre returns a genre with its albums, artists and tracks.
func (s *PlayerService) GetGenre(
	ctx context.Context,
	req *connect.Request[playerv1.GetGenreRequest],
) (*connect.Response[playerv1.GetGenreResponse], error) {
	page, err := s.session.Genre(ctx, req.Msg.GenreId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.GetGenreResponse{
		Genre:   session.BuildGenreInfo(page.Genre),
		Albums:  s.session.BuildAlbumList(page.Albums),
		Artists: session.BuildArtistList(page.Artists),
		Tracks:  s.session.BuildTrackList(page.Tracks),
	}), nil
}

// ListGenres returns the browsable genres.
func (s *PlayerService) ListGenres(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.ListGenresResponse], error) {
	genres, err := s.session.Genres(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.ListGenresResponse{
		Genres: session.BuildGenreList(genres),
	}), nil
}

// ListArtists returns the browsable artists.
func (s *PlayerService) ListArtists(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.ListArtistsResponse], error) {
	artists, err := s.session.Artists(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.ListArtistsResponse{
		Artists: session.BuildArtistList(artists),
	}), nil
}

// ListAlbums returns the browsable albums without their tracks.
func (s *PlayerService) ListAlbums(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.ListAlbumsResponse], error) {
	albums, err := s.session.Albums(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.ListAlbumsResponse{
		Albums: s.session.BuildAlbumList(albums),
	}), nil
}

// ToggleLike likes or unlikes a track.
func (s *PlayerService) ToggleLike(
	ctx context.Context,
	req *connect.Request[playerv1.ToggleLikeRequest],
) (*connect.Response[playerv1.ToggleLikeResponse], error) {
	liked, err := s.session.ToggleLike(ctx, req.Msg.TrackId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.ToggleLikeResponse{
		TrackId: req.Msg.TrackId,
		Liked:   liked,
	}), nil
}

// ListLiked returns the liked tracks in like order.
func (s *PlayerService) ListLiked(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.ListLikedResponse], error) {
	tracks, err := s.session.LikedTracks(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.ListLikedResponse{
		Tracks: s.session.BuildTrackList(tracks),
	}), nil
}

// SubscribeNotifications streams the initial state and then every change.
func (s *PlayerService) SubscribeNotifications(
	ctx context.Context,
	req *connect.Request[playerv1.SubscribeNotificationsRequest],
	stream *connect.ServerStream[playerv1.Notification],
) error {
	notifManager := s.session.GetNotificationManager()

	initial := &playerv1.Notification{
		Type:   playerv1.NotificationType_NOTIFICATION_TYPE_INITIAL_STATE,
		Status: s.session.Status(),
	}
	subscriptionID := notifManager.Subscribe(stream, initial)
	zlog.Debug().Msgf("api: subscriber joined id=%s subscribers=%d", subscriptionID, notifManager.SubscriberCount())

	select {
	case <-ctx.Done():
	case <-s.session.Done():
	case <-notifManager.Gone(subscriptionID):
	}

	notifManager.Unsubscribe(subscriptionID)
	zlog.Debug().Msgf("api: subscriber left id=%s", subscriptionID)
	return nil
}

func (s *PlayerService) status() *connect.Response[playerv1.StatusResponse] {
	return connect.NewResponse(&playerv1.StatusResponse{Status: s.session.Status()})
}

func queueContextFromWire(qc *playerv1.QueueContext) session.QueueContext {
	if qc == nil {
		return session.QueueContext{}
	}
	return session.QueueContext{
		Kind:     contextKindFromWire(qc.Kind),
		ID:       qc.Id,
		TrackIDs: qc.TrackIds,
	}
}

func contextKindFromWire(k playerv1.QueueContextKind) session.ContextKind {
	switch k {
	case playerv1.QueueContextKind_QUEUE_CONTEXT_KIND_UNSPECIFIED:
		return session.ContextNone
	case playerv1.QueueContextKind_QUEUE_CONTEXT_KIND_ALBUM:
		return session.ContextAlbum
	case playerv1.QueueContextKind_QUEUE_CONTEXT_KIND_ARTIST:
		return session.ContextArtist
	case playerv1.QueueContextKind_QUEUE_CONTEXT_KIND_GENRE:
		return session.ContextGenre
	case playerv1.QueueContextKind_QUEUE_CONTEXT_KIND_LIKED:
		return session.ContextLiked
	case playerv1.QueueContextKind_QUEUE_CONTEXT_KIND_TRACKS:
		return session.ContextTracks
	default:
		// Rejected by the session as an unknown context.
		return session.ContextKind(k.String())
	}
}

// toConnectError maps application errors onto connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, filter.ErrRejected):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, session.ErrInvalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, session.ErrClosed):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		zlog.Error().Msgf("api: internal error: %v", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}
