package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:maps
	mapFS embed.FS
)

// boardLayer is the tile layer holding one sprite per cell
const boardLayer = "board"

// Board is the static background grid: one sprite path per cell
type Board struct {
	Columns    int
	Rows       int
	CellWidth  int
	CellHeight int
	Cells      [][]string // [row][col]
}

// RowSprite returns the sprite of the first cell in row
func (b *Board) RowSprite(row int) string {
	if row < 0 || row >= len(b.Cells) || len(b.Cells[row]) == 0 {
		return ""
	}
	return b.Cells[row][0]
}

// Sprites returns every distinct sprite the board uses, top row first
func (b *Board) Sprites() []string {
	seen := map[string]bool{}
	var out []string
	for _, row := range b.Cells {
		for _, s := range row {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// LoadBoard parses the board map at path in fsys
func LoadBoard(fsys fs.FS, path string) (*Board, error) {
	boardMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load board %s: %w", path, err)
	}

	board := &Board{
		Columns:    boardMap.Width,
		Rows:       boardMap.Height,
		CellWidth:  boardMap.TileWidth,
		CellHeight: boardMap.TileHeight,
		Cells:      make([][]string, boardMap.Height),
	}

	var layer *tiled.Layer
	for _, l := range boardMap.Layers {
		if l.Name == boardLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("board %s: no %q layer", path, boardLayer)
	}

	for y := 0; y < boardMap.Height; y++ {
		board.Cells[y] = make([]string, boardMap.Width)
		for x := 0; x < boardMap.Width; x++ {
			tile := layer.Tiles[y*boardMap.Width+x]
			if tile.IsNil() {
				continue
			}
			tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
			if err != nil {
				return nil, fmt.Errorf("board %s cell %d,%d: %w", path, x, y, err)
			}
			board.Cells[y][x] = tilesetTile.Properties.GetString("sprite")
		}
	}

	return board, nil
}

// MustLoadBoard loads the embedded board map or panics
func MustLoadBoard(path string) *Board {
	board, err := LoadBoard(mapFS, path)
	if err != nil {
		panic(err)
	}
	return board
}
