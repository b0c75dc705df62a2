//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// MetadataLinkType selects the external database a series link points to
// ENUM(IMDb,TVDb,TVMaze,Trakt)
type MetadataLinkType string
