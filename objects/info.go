package objects

import "reflect"

// Info carries the font-wide metadata of fontinfo.plist. Optional
// numeric and boolean attributes are pointers so that an unset attribute
// stays distinguishable from a zero value and is omitted on write.
//
// Field names follow the UFO 3 attribute names; the plist tags are the
// exact on-disk keys.
type Info struct {
	FamilyName         string `plist:"familyName,omitempty"`
	StyleName          string `plist:"styleName,omitempty"`
	StyleMapFamilyName string `plist:"styleMapFamilyName,omitempty"`
	StyleMapStyleName  string `plist:"styleMapStyleName,omitempty"`
	VersionMajor       *int   `plist:"versionMajor,omitempty"`
	VersionMinor       *int   `plist:"versionMinor,omitempty"`
	Year               *int   `plist:"year,omitempty"`

	UnitsPerEm  *Number `plist:"unitsPerEm,omitempty"`
	Descender   *Number `plist:"descender,omitempty"`
	XHeight     *Number `plist:"xHeight,omitempty"`
	CapHeight   *Number `plist:"capHeight,omitempty"`
	Ascender    *Number `plist:"ascender,omitempty"`
	ItalicAngle *Number `plist:"italicAngle,omitempty"`

	Copyright string `plist:"copyright,omitempty"`
	Trademark string `plist:"trademark,omitempty"`
	Note      string `plist:"note,omitempty"`

	Guidelines []*Guideline `plist:"guidelines,omitempty"`

	OpenTypeGaspRangeRecords []GaspRangeRecord `plist:"openTypeGaspRangeRecords,omitempty"`

	OpenTypeHeadCreated       string `plist:"openTypeHeadCreated,omitempty"`
	OpenTypeHeadLowestRecPPEM *int   `plist:"openTypeHeadLowestRecPPEM,omitempty"`
	OpenTypeHeadFlags         []int  `plist:"openTypeHeadFlags,omitempty"`

	OpenTypeHheaAscender       *int `plist:"openTypeHheaAscender,omitempty"`
	OpenTypeHheaDescender      *int `plist:"openTypeHheaDescender,omitempty"`
	OpenTypeHheaLineGap        *int `plist:"openTypeHheaLineGap,omitempty"`
	OpenTypeHheaCaretSlopeRise *int `plist:"openTypeHheaCaretSlopeRise,omitempty"`
	OpenTypeHheaCaretSlopeRun  *int `plist:"openTypeHheaCaretSlopeRun,omitempty"`
	OpenTypeHheaCaretOffset    *int `plist:"openTypeHheaCaretOffset,omitempty"`

	OpenTypeNameDesigner               string       `plist:"openTypeNameDesigner,omitempty"`
	OpenTypeNameDesignerURL            string       `plist:"openTypeNameDesignerURL,omitempty"`
	OpenTypeNameManufacturer           string       `plist:"openTypeNameManufacturer,omitempty"`
	OpenTypeNameManufacturerURL        string       `plist:"openTypeNameManufacturerURL,omitempty"`
	OpenTypeNameLicense                string       `plist:"openTypeNameLicense,omitempty"`
	OpenTypeNameLicenseURL             string       `plist:"openTypeNameLicenseURL,omitempty"`
	OpenTypeNameVersion                string       `plist:"openTypeNameVersion,omitempty"`
	OpenTypeNameUniqueID               string       `plist:"openTypeNameUniqueID,omitempty"`
	OpenTypeNameDescription            string       `plist:"openTypeNameDescription,omitempty"`
	OpenTypeNamePreferredFamilyName    string       `plist:"openTypeNamePreferredFamilyName,omitempty"`
	OpenTypeNamePreferredSubfamilyName string       `plist:"openTypeNamePreferredSubfamilyName,omitempty"`
	OpenTypeNameCompatibleFullName     string       `plist:"openTypeNameCompatibleFullName,omitempty"`
	OpenTypeNameSampleText             string       `plist:"openTypeNameSampleText,omitempty"`
	OpenTypeNameWWSFamilyName          string       `plist:"openTypeNameWWSFamilyName,omitempty"`
	OpenTypeNameWWSSubfamilyName       string       `plist:"openTypeNameWWSSubfamilyName,omitempty"`
	OpenTypeNameRecords                []NameRecord `plist:"openTypeNameRecords,omitempty"`

	OpenTypeOS2WidthClass             *int  `plist:"openTypeOS2WidthClass,omitempty"`
	OpenTypeOS2WeightClass            *int  `plist:"openTypeOS2WeightClass,omitempty"`
	OpenTypeOS2Selection              []int `plist:"openTypeOS2Selection,omitempty"`
	OpenTypeOS2VendorID               string `plist:"openTypeOS2VendorID,omitempty"`
	OpenTypeOS2Panose                 []int `plist:"openTypeOS2Panose,omitempty"`
	OpenTypeOS2FamilyClass            []int `plist:"openTypeOS2FamilyClass,omitempty"`
	OpenTypeOS2UnicodeRanges          []int `plist:"openTypeOS2UnicodeRanges,omitempty"`
	OpenTypeOS2CodePageRanges         []int `plist:"openTypeOS2CodePageRanges,omitempty"`
	OpenTypeOS2TypoAscender           *int  `plist:"openTypeOS2TypoAscender,omitempty"`
	OpenTypeOS2TypoDescender          *int  `plist:"openTypeOS2TypoDescender,omitempty"`
	OpenTypeOS2TypoLineGap            *int  `plist:"openTypeOS2TypoLineGap,omitempty"`
	OpenTypeOS2WinAscent              *int  `plist:"openTypeOS2WinAscent,omitempty"`
	OpenTypeOS2WinDescent             *int  `plist:"openTypeOS2WinDescent,omitempty"`
	OpenTypeOS2SubscriptXSize         *int  `plist:"openTypeOS2SubscriptXSize,omitempty"`
	OpenTypeOS2SubscriptYSize         *int  `plist:"openTypeOS2SubscriptYSize,omitempty"`
	OpenTypeOS2SubscriptXOffset       *int  `plist:"openTypeOS2SubscriptXOffset,omitempty"`
	OpenTypeOS2SubscriptYOffset       *int  `plist:"openTypeOS2SubscriptYOffset,omitempty"`
	OpenTypeOS2SuperscriptXSize       *int  `plist:"openTypeOS2SuperscriptXSize,omitempty"`
	OpenTypeOS2SuperscriptYSize       *int  `plist:"openTypeOS2SuperscriptYSize,omitempty"`
	OpenTypeOS2SuperscriptXOffset     *int  `plist:"openTypeOS2SuperscriptXOffset,omitempty"`
	OpenTypeOS2SuperscriptYOffset     *int  `plist:"openTypeOS2SuperscriptYOffset,omitempty"`
	OpenTypeOS2StrikeoutSize          *int  `plist:"openTypeOS2StrikeoutSize,omitempty"`
	OpenTypeOS2StrikeoutPosition      *int  `plist:"openTypeOS2StrikeoutPosition,omitempty"`

	OpenTypeVheaVertTypoAscender  *int `plist:"openTypeVheaVertTypoAscender,omitempty"`
	OpenTypeVheaVertTypoDescender *int `plist:"openTypeVheaVertTypoDescender,omitempty"`
	OpenTypeVheaVertTypoLineGap   *int `plist:"openTypeVheaVertTypoLineGap,omitempty"`
	OpenTypeVheaCaretSlopeRise    *int `plist:"openTypeVheaCaretSlopeRise,omitempty"`
	OpenTypeVheaCaretSlopeRun     *int `plist:"openTypeVheaCaretSlopeRun,omitempty"`
	OpenTypeVheaCaretOffset       *int `plist:"openTypeVheaCaretOffset,omitempty"`

	PostscriptFontName            string    `plist:"postscriptFontName,omitempty"`
	PostscriptFullName            string    `plist:"postscriptFullName,omitempty"`
	PostscriptSlantAngle          *Number  `plist:"postscriptSlantAngle,omitempty"`
	PostscriptUniqueID            *int     `plist:"postscriptUniqueID,omitempty"`
	PostscriptUnderlineThickness  *Number  `plist:"postscriptUnderlineThickness,omitempty"`
	PostscriptUnderlinePosition   *Number  `plist:"postscriptUnderlinePosition,omitempty"`
	PostscriptIsFixedPitch        *bool    `plist:"postscriptIsFixedPitch,omitempty"`
	PostscriptBlueValues          []Number `plist:"postscriptBlueValues,omitempty"`
	PostscriptOtherBlues          []Number `plist:"postscriptOtherBlues,omitempty"`
	PostscriptFamilyBlues         []Number `plist:"postscriptFamilyBlues,omitempty"`
	PostscriptFamilyOtherBlues    []Number `plist:"postscriptFamilyOtherBlues,omitempty"`
	PostscriptStemSnapH           []Number `plist:"postscriptStemSnapH,omitempty"`
	PostscriptStemSnapV           []Number `plist:"postscriptStemSnapV,omitempty"`
	PostscriptBlueFuzz            *Number  `plist:"postscriptBlueFuzz,omitempty"`
	PostscriptBlueShift           *Number  `plist:"postscriptBlueShift,omitempty"`
	PostscriptBlueScale           *Number  `plist:"postscriptBlueScale,omitempty"`
	PostscriptForceBold           *bool    `plist:"postscriptForceBold,omitempty"`
	PostscriptDefaultWidthX       *Number  `plist:"postscriptDefaultWidthX,omitempty"`
	PostscriptNominalWidthX       *Number  `plist:"postscriptNominalWidthX,omitempty"`
	PostscriptWeightName          string    `plist:"postscriptWeightName,omitempty"`
	PostscriptDefaultCharacter    string    `plist:"postscriptDefaultCharacter,omitempty"`
	PostscriptWindowsCharacterSet *int      `plist:"postscriptWindowsCharacterSet,omitempty"`

	MacintoshFONDFamilyID *int   `plist:"macintoshFONDFamilyID,omitempty"`
	MacintoshFONDName     string `plist:"macintoshFONDName,omitempty"`
}

// GaspRangeRecord is one record of the gasp table description.
type GaspRangeRecord struct {
	RangeMaxPPEM     int   `plist:"rangeMaxPPEM"`
	RangeGaspBehavior []int `plist:"rangeGaspBehavior"`
}

// NameRecord is one record of the OpenType name table description.
type NameRecord struct {
	NameID     int    `plist:"nameID"`
	PlatformID int    `plist:"platformID"`
	EncodingID int    `plist:"encodingID"`
	LanguageID int    `plist:"languageID"`
	String     string `plist:"string"`
}

// Empty reports whether no attribute is set. Writers skip
// fontinfo.plist for an empty info.
func (i *Info) Empty() bool {
	return i == nil || reflect.DeepEqual(*i, Info{})
}

// Copy returns a fully independent deep copy of the info.
func (i *Info) Copy() *Info {
	if i == nil {
		return nil
	}
	out := *i
	out.Guidelines = copyGuidelines(i.Guidelines)
	out.OpenTypeGaspRangeRecords = copyGaspRecords(i.OpenTypeGaspRangeRecords)
	out.OpenTypeNameRecords = append([]NameRecord(nil), i.OpenTypeNameRecords...)
	if i.OpenTypeNameRecords == nil {
		out.OpenTypeNameRecords = nil
	}
	out.OpenTypeHeadFlags = copyInts(i.OpenTypeHeadFlags)
	out.OpenTypeOS2Selection = copyInts(i.OpenTypeOS2Selection)
	out.OpenTypeOS2Panose = copyInts(i.OpenTypeOS2Panose)
	out.OpenTypeOS2FamilyClass = copyInts(i.OpenTypeOS2FamilyClass)
	out.OpenTypeOS2UnicodeRanges = copyInts(i.OpenTypeOS2UnicodeRanges)
	out.OpenTypeOS2CodePageRanges = copyInts(i.OpenTypeOS2CodePageRanges)
	out.PostscriptBlueValues = copyNumbers(i.PostscriptBlueValues)
	out.PostscriptOtherBlues = copyNumbers(i.PostscriptOtherBlues)
	out.PostscriptFamilyBlues = copyNumbers(i.PostscriptFamilyBlues)
	out.PostscriptFamilyOtherBlues = copyNumbers(i.PostscriptFamilyOtherBlues)
	out.PostscriptStemSnapH = copyNumbers(i.PostscriptStemSnapH)
	out.PostscriptStemSnapV = copyNumbers(i.PostscriptStemSnapV)
	copyIntPtrs(&out, i)
	return &out
}

func copyGaspRecords(rs []GaspRangeRecord) []GaspRangeRecord {
	if rs == nil {
		return nil
	}
	out := make([]GaspRangeRecord, len(rs))
	for i, r := range rs {
		out[i] = r
		out[i].RangeGaspBehavior = copyInts(r.RangeGaspBehavior)
	}
	return out
}

func copyInts(v []int) []int {
	if v == nil {
		return nil
	}
	return append([]int(nil), v...)
}

func copyNumbers(v []Number) []Number {
	if v == nil {
		return nil
	}
	return append([]Number(nil), v...)
}

// copyIntPtrs reallocates the pointer-typed attributes so that the copy
// does not share them with the original.
func copyIntPtrs(dst, src *Info) {
	cloneInt := func(p **int) {
		if *p != nil {
			v := **p
			*p = &v
		}
	}
	cloneNumber := func(p **Number) {
		if *p != nil {
			v := **p
			*p = &v
		}
	}
	cloneBool := func(p **bool) {
		if *p != nil {
			v := **p
			*p = &v
		}
	}
	for _, p := range []**int{
		&dst.VersionMajor, &dst.VersionMinor, &dst.Year,
		&dst.OpenTypeHeadLowestRecPPEM,
		&dst.OpenTypeHheaAscender, &dst.OpenTypeHheaDescender, &dst.OpenTypeHheaLineGap,
		&dst.OpenTypeHheaCaretSlopeRise, &dst.OpenTypeHheaCaretSlopeRun, &dst.OpenTypeHheaCaretOffset,
		&dst.OpenTypeOS2WidthClass, &dst.OpenTypeOS2WeightClass,
		&dst.OpenTypeOS2TypoAscender, &dst.OpenTypeOS2TypoDescender, &dst.OpenTypeOS2TypoLineGap,
		&dst.OpenTypeOS2WinAscent, &dst.OpenTypeOS2WinDescent,
		&dst.OpenTypeOS2SubscriptXSize, &dst.OpenTypeOS2SubscriptYSize,
		&dst.OpenTypeOS2SubscriptXOffset, &dst.OpenTypeOS2SubscriptYOffset,
		&dst.OpenTypeOS2SuperscriptXSize, &dst.OpenTypeOS2SuperscriptYSize,
		&dst.OpenTypeOS2SuperscriptXOffset, &dst.OpenTypeOS2SuperscriptYOffset,
		&dst.OpenTypeOS2StrikeoutSize, &dst.OpenTypeOS2StrikeoutPosition,
		&dst.OpenTypeVheaVertTypoAscender, &dst.OpenTypeVheaVertTypoDescender,
		&dst.OpenTypeVheaVertTypoLineGap, &dst.OpenTypeVheaCaretSlopeRise,
		&dst.OpenTypeVheaCaretSlopeRun, &dst.OpenTypeVheaCaretOffset,
		&dst.PostscriptUniqueID, &dst.PostscriptWindowsCharacterSet,
		&dst.MacintoshFONDFamilyID,
	} {
		cloneInt(p)
	}
	for _, p := range []**Number{
		&dst.UnitsPerEm, &dst.Descender, &dst.XHeight, &dst.CapHeight,
		&dst.Ascender, &dst.ItalicAngle,
		&dst.PostscriptSlantAngle, &dst.PostscriptUnderlineThickness,
		&dst.PostscriptUnderlinePosition, &dst.PostscriptBlueFuzz,
		&dst.PostscriptBlueShift, &dst.PostscriptBlueScale,
		&dst.PostscriptDefaultWidthX, &dst.PostscriptNominalWidthX,
	} {
		cloneNumber(p)
	}
	cloneBool(&dst.PostscriptIsFixedPitch)
	cloneBool(&dst.PostscriptForceBold)
}
