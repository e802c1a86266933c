package session

import (
	"github.com/osa030/19player/internal/app/playback"
	"github.com/osa030/19player/internal/domain/album"
	"github.com/osa030/19player/internal/domain/artist"
	"github.com/osa030/19player/internal/domain/genre"
	"github.com/osa030/19player/internal/domain/track"
	playerv1 "github.com/osa030/19player/internal/gen/player/v1"
)

// BuildTrackInfo converts a track to its wire form, with the liked flag set.
func (m *Manager) BuildTrackInfo(t track.Track) *playerv1.Track {
	return &playerv1.Track{
		Id:          t.ID,
		Title:       t.Title,
		ArtistId:    t.ArtistID,
		ArtistName:  t.ArtistName,
		AlbumId:     t.AlbumID,
		AlbumTitle:  t.AlbumTitle,
		ArtworkUrl:  t.ArtworkURL,
		DurationMs:  t.Duration.Milliseconds(),
		MediaUrl:    t.MediaURL,
		Genre:       t.Genre,
		TrackNumber: int32(t.TrackNumber),
		Liked:       m.IsLiked(t.ID),
	}
}

// BuildTrackList converts a track list to its wire form.
func (m *Manager) BuildTrackList(tracks []track.Track) []*playerv1.Track {
	out := make([]*playerv1.Track, len(tracks))
	for i, t := range tracks {
		out[i] = m.BuildTrackInfo(t)
	}
	return out
}

// BuildAlbumInfo converts an album to its wire form.
func (m *Manager) BuildAlbumInfo(a *album.Album) *playerv1.Album {
	if a == nil {
		return nil
	}
	return &playerv1.Album{
		Id:              a.ID,
		Title:           a.Title,
		ArtistId:        a.ArtistID,
		ArtistName:      a.ArtistName,
		ArtworkUrl:      a.ArtworkURL,
		ReleaseYear:     int32(a.ReleaseYear),
		Genre:           a.Genre,
		TotalDurationMs: a.TotalDuration().Milliseconds(),
		Tracks:          m.BuildTrackList(a.Tracks),
	}
}

// BuildAlbumList converts an album list to its wire form.
func (m *Manager) BuildAlbumList(albums []album.Album) []*playerv1.Album {
	out := make([]*playerv1.Album, len(albums))
	for i := range albums {
		out[i] = m.BuildAlbumInfo(&albums[i])
	}
	return out
}

// BuildArtistInfo converts an artist to its wire form.
func BuildArtistInfo(a *artist.Artist) *playerv1.Artist {
	if a == nil {
		return nil
	}
	return &playerv1.Artist{
		Id:       a.ID,
		Name:     a.Name,
		Bio:      a.Bio,
		ImageUrl: a.ImageURL,
		Genres:   a.Genres,
	}
}

// BuildArtistList converts an artist list to its wire form.
func BuildArtistList(artists []artist.Artist) []*playerv1.Artist {
	out := make([]*playerv1.Artist, len(artists))
	for i := range artists {
		out[i] = BuildArtistInfo(&artists[i])
	}
	return out
}

// BuildGenreInfo converts a genre to its wire form.
func BuildGenreInfo(g *genre.Genre) *playerv1.Genre {
	if g == nil {
		return nil
	}
	return &playerv1.Genre{
		Id:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Color:       g.Color,
		ImageUrl:    g.ImageURL,
	}
}

// BuildGenreList converts a genre list to its wire form.
func BuildGenreList(genres []genre.Genre) []*playerv1.Genre {
	out := make([]*playerv1.Genre, len(genres))
	for i := range genres {
		out[i] = BuildGenreInfo(&genres[i])
	}
	return out
}

func (m *Manager) buildStatus(s playback.Status) *playerv1.PlayerStatus {
	ps := &playerv1.PlayerStatus{
		State:               playbackState(s.State),
		Queue:               m.BuildTrackList(s.Queue),
		QueueIndex:          int32(s.QueueIndex),
		IsPlaying:           s.IsPlaying,
		CurrentTimeMs:       s.CurrentTime.Milliseconds(),
		DurationMs:          s.Duration.Milliseconds(),
		Volume:              s.Volume,
		IsMuted:             s.IsMuted,
		IsExpandedView:      s.IsExpandedView,
		IsMiniPlayerVisible: s.IsMiniPlayerVisible,
		ShowUpsell:          s.ShowUpsell,
		LastError:           s.LastError,
		Entitled:            m.isEntitled(),
	}
	if s.CurrentTrack != nil {
		ps.CurrentTrack = m.BuildTrackInfo(*s.CurrentTrack)
	}
	return ps
}

func playbackState(s playback.State) playerv1.PlaybackState {
	switch s {
	case playback.StateIdle:
		return playerv1.PlaybackState_PLAYBACK_STATE_IDLE
	case playback.StateLoading:
		return playerv1.PlaybackState_PLAYBACK_STATE_LOADING
	case playback.StatePlaying:
		return playerv1.PlaybackState_PLAYBACK_STATE_PLAYING
	case playback.StatePaused:
		return playerv1.PlaybackState_PLAYBACK_STATE_PAUSED
	default:
		return playerv1.PlaybackState_PLAYBACK_STATE_UNSPECIFIED
	}
}

func notificationType(t playback.EventType) playerv1.NotificationType {
	switch t {
	case playback.EventTrackChanged:
		return playerv1.NotificationType_NOTIFICATION_TYPE_TRACK_CHANGED
	case playback.EventStateChanged:
		return playerv1.NotificationType_NOTIFICATION_TYPE_STATE_CHANGED
	case playback.EventQueueChanged:
		return playerv1.NotificationType_NOTIFICATION_TYPE_QUEUE_CHANGED
	case playback.EventProgress:
		return playerv1.NotificationType_NOTIFICATION_TYPE_PROGRESS
	case playback.EventUpsellChanged:
		return playerv1.NotificationType_NOTIFICATION_TYPE_UPSELL_CHANGED
	case playback.EventMediaError:
		return playerv1.NotificationType_NOTIFICATION_TYPE_MEDIA_ERROR
	case playback.EventViewChanged:
		return playerv1.NotificationType_NOTIFICATION_TYPE_VIEW_CHANGED
	default:
		return playerv1.NotificationType_NOTIFICATION_TYPE_UNSPECIFIED
	}
}
