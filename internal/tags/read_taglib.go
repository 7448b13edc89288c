package tags

import (
	"go.senan.xyz/taglib"
)

// readWithTaglib reads metadata using TagLib as fallback when dhowden/tag
// fails on FLAC, M4A and Ogg files.
func readWithTaglib(path string, b builder) error {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return err
	}
	tags := taglibTags(rawTags)

	b.setAll("title", tags.all(taglib.Title))
	b.setAll("artist", tags.all(taglib.Artist))
	b.setAll("albumartist", tags.all(taglib.AlbumArtist))
	b.set("album", tags.get(taglib.Album))
	b.setAll("genre", tags.all(taglib.Genre))

	trackNum, trackTotal := parseNumberPair(tags.get(taglib.TrackNumber))
	discNum, discTotal := parseNumberPair(tags.get(taglib.DiscNumber))
	b.setNum("tracknumber", trackNum)
	b.setNum("tracktotal", trackTotal)
	b.setNum("discnumber", discNum)
	b.setNum("disctotal", discTotal)

	applyTaglibExtended(tags, b)
	return nil
}

// readTaglibExtendedTags reads extended tags from M4A and Ogg files using TagLib.
func readTaglibExtendedTags(path string, b builder) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return
	}
	applyTaglibExtended(taglibTags(rawTags), b)
}

func applyTaglibExtended(tags taglibTags, b builder) {
	// Track/disc totals (dhowden/tag may not return these)
	if !b.rec.Has("tracktotal") {
		_, total := parseNumberPair(tags.get("TRACKTOTAL", "TOTALTRACKS"))
		b.setNum("tracktotal", total)
	}
	if !b.rec.Has("disctotal") {
		_, total := parseNumberPair(tags.get("DISCTOTAL", "TOTALDISCS"))
		b.setNum("disctotal", total)
	}

	if date := tags.get(taglib.Date); date != "" {
		b.rec.Set("date", date)
	}
	b.set("originaldate", tags.get(taglib.OriginalDate, "ORIGINALYEAR"))
	b.fillIfMissing("composer", tags.get("COMPOSER"))

	b.set("artistsort", tags.get(taglib.ArtistSort))
	b.set("organization", tags.get(taglib.Label, "LABEL", "ORGANIZATION"))
	b.set("catalognumber", tags.get(taglib.CatalogNumber, "CATALOGNUMBER"))
	b.set("barcode", tags.get(taglib.Barcode, "BARCODE"))
	b.set("media", tags.get(taglib.Media, "MEDIA"))
	b.set("releasestatus", tags.get(taglib.ReleaseStatus, "RELEASESTATUS"))
	b.set("releasetype", tags.get(taglib.ReleaseType, "RELEASETYPE"))
	b.set("script", tags.get(taglib.Script, "SCRIPT"))
	b.set("releasecountry", tags.get(taglib.ReleaseCountry, "RELEASECOUNTRY"))
	b.set("isrc", tags.get(taglib.ISRC, "ISRC"))

	// MusicBrainz IDs - try all known formats for compatibility:
	// 1. TagLib underscore format (MUSICBRAINZ_ARTISTID)
	// 2. Uppercase with spaces (MUSICBRAINZ ARTIST ID)
	// 3. Picard/Mutagen standard - mixed case with spaces (MusicBrainz Artist Id)
	b.set("musicbrainz_artistid", tags.get(
		taglib.MusicBrainzArtistID, "MUSICBRAINZ ARTIST ID", "MusicBrainz Artist Id"))
	b.set("musicbrainz_albumid", tags.get(
		taglib.MusicBrainzAlbumID, "MUSICBRAINZ ALBUM ID", "MusicBrainz Album Id"))
	b.set("musicbrainz_releasegroupid", tags.get(
		taglib.MusicBrainzReleaseGroupID, "MUSICBRAINZ RELEASE GROUP ID", "MusicBrainz Release Group Id"))
	b.set("musicbrainz_trackid", tags.get(
		taglib.MusicBrainzTrackID, "MUSICBRAINZ TRACK ID", "MusicBrainz Track Id"))
	b.set("musicbrainz_releasetrackid", tags.get(
		taglib.MusicBrainzReleaseTrackID, "MUSICBRAINZ RELEASE TRACK ID", "MusicBrainz Release Track Id"))
}
