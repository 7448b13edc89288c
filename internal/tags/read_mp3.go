package tags

import (
	"github.com/bogem/id3v2/v2"
)

// txxxFields maps ID3 user-defined frame descriptions to record fields.
var txxxFields = []struct {
	desc  string
	field string
}{
	{"MusicBrainz Artist Id", "musicbrainz_artistid"},
	{"MusicBrainz Album Id", "musicbrainz_albumid"},
	{"MusicBrainz Release Group Id", "musicbrainz_releasegroupid"},
	{"MusicBrainz Release Track Id", "musicbrainz_releasetrackid"},
	{"MusicBrainz Album Status", "releasestatus"},
	{"MusicBrainz Album Type", "releasetype"},
	{"MusicBrainz Album Release Country", "releasecountry"},
	{"CATALOGNUMBER", "catalognumber"},
	{"BARCODE", "barcode"},
	{"SCRIPT", "script"},
}

// readMP3ExtendedTags reads extended ID3v2 tags from an MP3 file.
func readMP3ExtendedTags(path string, b builder) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return
	}
	defer id3tag.Close()

	// Read date frames - try ID3v2.4 first, then fall back to ID3v2.3
	date := getID3TextFrame(id3tag, "TDRC")
	if date == "" {
		// ID3v2.3: combine TYER (year) and TDAT (DDMM) if available
		date = getID3TextFrame(id3tag, "TYER")
		if tdat := getID3TextFrame(id3tag, "TDAT"); date != "" && len(tdat) == 4 {
			date = date + "-" + tdat[2:4] + "-" + tdat[0:2]
		}
	}
	if date != "" {
		b.rec.Set("date", date)
	}

	original := getID3TextFrame(id3tag, "TDOR")
	if original == "" {
		original = getID3TextFrame(id3tag, "TORY")
	}
	if original == "" {
		original = getID3TXXXFrame(id3tag, "ORIGINALYEAR")
	}
	b.set("originaldate", original)

	b.set("artistsort", getID3TextFrame(id3tag, "TSOP"))
	b.set("organization", getID3TextFrame(id3tag, "TPUB"))
	b.set("media", getID3TextFrame(id3tag, "TMED"))
	b.set("isrc", getID3TextFrame(id3tag, "TSRC"))
	b.fillIfMissing("composer", getID3TextFrame(id3tag, "TCOM"))

	for _, tx := range txxxFields {
		b.set(tx.field, getID3TXXXFrame(id3tag, tx.desc))
	}

	// UFID frame holds the MusicBrainz recording ID
	for _, frame := range id3tag.GetFrames("UFID") {
		if ufid, ok := frame.(id3v2.UFIDFrame); ok && ufid.OwnerIdentifier == "http://musicbrainz.org" {
			b.set("musicbrainz_trackid", string(ufid.Identifier))
			break
		}
	}
}

// readMP3WithID3v2Fallback reads MP3 metadata using only the id3v2 library.
// This is used as a fallback when dhowden/tag fails (e.g., on some UTF-16 encoded tags).
func readMP3WithID3v2Fallback(path string, b builder) error {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}

	b.set("title", id3tag.Title())
	b.set("artist", id3tag.Artist())
	b.set("albumartist", getID3TextFrame(id3tag, "TPE2"))
	b.set("album", id3tag.Album())
	b.set("genre", id3tag.Genre())
	if year := id3tag.Year(); len(year) >= 4 {
		b.set("date", year[:4])
	}

	trackNum, totalTracks := parseNumberPair(getID3TextFrame(id3tag, "TRCK"))
	discNum, totalDiscs := parseNumberPair(getID3TextFrame(id3tag, "TPOS"))
	b.setNum("tracknumber", trackNum)
	b.setNum("tracktotal", totalTracks)
	b.setNum("discnumber", discNum)
	b.setNum("disctotal", totalDiscs)
	id3tag.Close()

	readMP3ExtendedTags(path, b)
	return nil
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
func getID3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}

// getID3TXXXFrame reads a user-defined text frame (TXXX) value.
func getID3TXXXFrame(id3tag *id3v2.Tag, description string) string {
	for _, frame := range id3tag.GetFrames("TXXX") {
		if txxx, ok := frame.(id3v2.UserDefinedTextFrame); ok && txxx.Description == description {
			return txxx.Value
		}
	}
	return ""
}
