package domain

import "time"

type Movie struct {
	ID        string
	Title     string
	Year      int
	Plot      string
	Genres    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Comment struct {
	ID        string
	MovieID   string
	Name      string
	Email     string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Theater struct {
	ID        string
	TheaterID int
	Street    string
	City      string
	State     string
	Zipcode   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
