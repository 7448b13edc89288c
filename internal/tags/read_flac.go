package tags

import (
	"strings"

	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

// vorbisFields maps Vorbis comment names to record fields. When several
// names feed one field, the first present wins.
var vorbisFields = []struct {
	name  string
	field string
}{
	{"TITLE", "title"},
	{"ARTIST", "artist"},
	{"ALBUMARTIST", "albumartist"},
	{"ALBUM ARTIST", "albumartist"},
	{"ALBUM", "album"},
	{"GENRE", "genre"},
	{"COMPOSER", "composer"},
	{"DATE", "date"},
	{"YEAR", "date"},
	{"ORIGINALDATE", "originaldate"},
	{"ORIGINALYEAR", "originaldate"},
	{"TRACKNUMBER", "tracknumber"},
	{"TRACKTOTAL", "tracktotal"},
	{"TOTALTRACKS", "tracktotal"},
	{"DISCNUMBER", "discnumber"},
	{"DISCTOTAL", "disctotal"},
	{"TOTALDISCS", "disctotal"},
	{"ARTISTSORT", "artistsort"},
	{"LABEL", "organization"},
	{"ORGANIZATION", "organization"},
	{"PUBLISHER", "organization"},
	{"CATALOGNUMBER", "catalognumber"},
	{"BARCODE", "barcode"},
	{"MEDIA", "media"},
	{"RELEASESTATUS", "releasestatus"},
	{"RELEASETYPE", "releasetype"},
	{"SCRIPT", "script"},
	{"RELEASECOUNTRY", "releasecountry"},
	{"ISRC", "isrc"},
	{"MUSICBRAINZ_ARTISTID", "musicbrainz_artistid"},
	{"MUSICBRAINZ_ALBUMID", "musicbrainz_albumid"},
	{"MUSICBRAINZ_RELEASEGROUPID", "musicbrainz_releasegroupid"},
	{"MUSICBRAINZ_TRACKID", "musicbrainz_trackid"},
	{"MUSICBRAINZ_RELEASETRACKID", "musicbrainz_releasetrackid"},
}

// readFLACExtendedTags reads the Vorbis comment block of a FLAC file. Every
// comment ends up in the record, multi-valued comments included.
func readFLACExtendedTags(path string, b builder) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return
	}

	for _, meta := range f.Meta {
		if meta.Type != goflac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return
		}
		applyVorbisComments(groupVorbisComments(cmts.Comments), b)
		return
	}
}

// groupVorbisComments collects NAME=value comments by upper-cased name,
// keeping their order.
func groupVorbisComments(comments []string) map[string][]string {
	grouped := make(map[string][]string)
	for _, c := range comments {
		name, value, ok := strings.Cut(c, "=")
		if !ok || name == "" {
			continue
		}
		name = strings.ToUpper(name)
		grouped[name] = append(grouped[name], value)
	}
	return grouped
}

// applyVorbisComments stores comments in the record. Comments are the
// authoritative source for FLAC files, so they replace what the generic
// reader found. Comments without a mapping keep their lower-cased name.
func applyVorbisComments(comments map[string][]string, b builder) {
	mapped := make(map[string]bool, len(vorbisFields))
	done := make(map[string]bool, len(vorbisFields))
	for _, vf := range vorbisFields {
		mapped[vf.name] = true
		values := comments[vf.name]
		if len(values) == 0 || done[vf.field] {
			continue
		}
		done[vf.field] = true
		switch vf.field {
		case "tracknumber", "discnumber":
			num, total := parseNumberPair(values[0])
			b.setNum(vf.field, num)
			totalField := "tracktotal"
			if vf.field == "discnumber" {
				totalField = "disctotal"
			}
			if !done[totalField] {
				b.setNum(totalField, total)
			}
		default:
			b.setAll(vf.field, values)
		}
	}
	for name, values := range comments {
		if !mapped[name] {
			b.setAll(strings.ToLower(name), values)
		}
	}
}
