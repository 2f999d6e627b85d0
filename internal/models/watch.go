package models

import (
	"time"

	"github.com/google/uuid"
)

type WatchHistory struct {
	HistoryID uuid.UUID `json:"id" db:"history_id" validate:"omitempty"`
	UserID    uuid.UUID `json:"user_id" db:"user_id" validate:"omitempty"`
	MovieID   uuid.UUID `json:"movie_id" db:"movie_id" validate:"required"`
	Progress  float64   `json:"progress" db:"progress" validate:"gte=0"`
	WatchDate time.Time `json:"watch_date" db:"watch_date"`
}

type Favorite struct {
	FavoriteID uuid.UUID `json:"id" db:"favorite_id" validate:"omitempty"`
	UserID     uuid.UUID `json:"user_id" db:"user_id" validate:"omitempty"`
	MovieID    uuid.UUID `json:"movie_id" db:"movie_id" validate:"required"`
	AddedDate  time.Time `json:"added_date" db:"added_date"`
}

// WatchHistoryItem joins a history row with the movie display fields.
type WatchHistoryItem struct {
	HistoryID uuid.UUID `json:"id" db:"history_id"`
	MovieID   uuid.UUID `json:"movie_id" db:"movie_id"`
	Progress  float64   `json:"progress" db:"progress"`
	WatchDate time.Time `json:"watch_date" db:"watch_date"`
	Title     string    `json:"title" db:"title"`
	Year      int       `json:"year" db:"year"`
	Duration  int64     `json:"duration" db:"duration"`
	Genre     string    `json:"genre" db:"genre"`
}

// FavoriteItem joins a favorite row with the movie display fields.
type FavoriteItem struct {
	FavoriteID uuid.UUID `json:"id" db:"favorite_id"`
	MovieID    uuid.UUID `json:"movie_id" db:"movie_id"`
	AddedDate  time.Time `json:"added_date" db:"added_date"`
	Title      string    `json:"title" db:"title"`
	Year       int       `json:"year" db:"year"`
	Duration   int64     `json:"duration" db:"duration"`
	Genre      string    `json:"genre" db:"genre"`
}

type AddHistoryInput struct {
	MovieID  uuid.UUID `json:"movie_id" validate:"required"`
	Progress float64   `json:"progress" validate:"gte=0"`
}

type UpdateProgressInput struct {
	Progress float64 `json:"progress" validate:"gte=0"`
}

type AddFavoriteInput struct {
	MovieID uuid.UUID `json:"movie_id" validate:"required"`
}
