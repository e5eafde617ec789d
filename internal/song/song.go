// Package song содержит сущность Song и фабрику, которая выдаёт
// единственного владельца новой песни.
package song

import (
	"fmt"

	"github.com/IvanChernomyrdin/go-songfactory/internal/ownership"
)

// Song — неизменяемая пара исполнитель/название.
//
// Поля закрыты, изменить песню после создания нельзя.
type Song struct {
	artist string
	title  string
}

// New создаёт значение Song. Владельцем оно становится только в арене (см. Factory).
func New(artist, title string) Song {
	return Song{artist: artist, title: title}
}

func (s Song) Artist() string { return s.artist }
func (s Song) Title() string { return s.title }

// String — "Artist - Title", так песня выглядит в trace.
func (s Song) String() string {
	return s.artist + " - " + s.title
}

// Arena — арена для песен.
type Arena = ownership.Arena[Song]

// Owned — единственный владелец песни.
type Owned = ownership.Unique[Song]

// NewArena создаёт арену песен.
func NewArena(opts ...ownership.Option[Song]) *Arena {
	return ownership.NewArena[Song](opts...)
}

// Factory создаёт песню в арене и отдаёт вызывающему единственное владение ею.
// Фабрика не сохраняет ссылок на результат.
//
// Единственная возможная ошибка — serr.ErrAllocation, если арена исчерпана.
func Factory(arena *Arena, artist, title string) (*Owned, error) {
	h, err := arena.New(New(artist, title))
	if err != nil {
		return nil, fmt.Errorf("song factory %q/%q: %w", artist, title, err)
	}
	return h, nil
}
