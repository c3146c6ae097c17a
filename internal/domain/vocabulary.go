package domain

// vocabulary lists the element codes documented in the GHCN-Daily readme.
var vocabulary = []string{
	// Core elements.
	"PRCP", "SNOW", "SNWD", "TMAX", "TMIN",

	// Cloudiness, dew point, pressure, wet bulb and average wind.
	"ACMC", "ACMH", "ACSC", "ACSH", "ADPT", "ASLP", "ASTP", "AWBT", "AWDR", "AWND",

	// Multiday totals and the day counts they cover.
	"DAEV", "DAPR", "DASF", "DATN", "DATX", "DAWM", "DWPR",
	"MDEV", "MDPR", "MDSF", "MDTN", "MDTX", "MDWM",

	// Evaporation, fastest mile, frozen ground, peak gust, humidity, sunshine.
	"EVAP", "FMTM", "FRGB", "FRGT", "FRTH", "GAHT", "MNPN", "MXPN", "PGTM", "PSUN",
	"RHAV", "RHMN", "RHMX",

	// Minimum soil temperature: SN<ground cover 0-8><depth 1-7>.
	"SN01", "SN02", "SN03", "SN04", "SN05", "SN06", "SN07",
	"SN11", "SN12", "SN13", "SN14", "SN15", "SN16", "SN17",
	"SN21", "SN22", "SN23", "SN24", "SN25", "SN26", "SN27",
	"SN31", "SN32", "SN33", "SN34", "SN35", "SN36", "SN37",
	"SN41", "SN42", "SN43", "SN44", "SN45", "SN46", "SN47",
	"SN51", "SN52", "SN53", "SN54", "SN55", "SN56", "SN57",
	"SN61", "SN62", "SN63", "SN64", "SN65", "SN66", "SN67",
	"SN71", "SN72", "SN73", "SN74", "SN75", "SN76", "SN77",
	"SN81", "SN82", "SN83", "SN84", "SN85", "SN86", "SN87",

	// Maximum soil temperature: SX<ground cover 0-8><depth 1-7>.
	"SX01", "SX02", "SX03", "SX04", "SX05", "SX06", "SX07",
	"SX11", "SX12", "SX13", "SX14", "SX15", "SX16", "SX17",
	"SX21", "SX22", "SX23", "SX24", "SX25", "SX26", "SX27",
	"SX31", "SX32", "SX33", "SX34", "SX35", "SX36", "SX37",
	"SX41", "SX42", "SX43", "SX44", "SX45", "SX46", "SX47",
	"SX51", "SX52", "SX53", "SX54", "SX55", "SX56", "SX57",
	"SX61", "SX62", "SX63", "SX64", "SX65", "SX66", "SX67",
	"SX71", "SX72", "SX73", "SX74", "SX75", "SX76", "SX77",
	"SX81", "SX82", "SX83", "SX84", "SX85", "SX86", "SX87",

	// Temperature, ice, sunshine duration.
	"TAOB", "TAVG", "TAXN", "THIC", "TOBS", "TSUN",

	// Wind direction and speed.
	"WDF1", "WDF2", "WDF5", "WDFG", "WDFI", "WDFM", "WDMV",
	"WSF1", "WSF2", "WSF5", "WSFG", "WSFI", "WSFM",

	// Snow water equivalent.
	"WESD", "WESF",

	// Weather types.
	"WT01", "WT02", "WT03", "WT04", "WT05", "WT06", "WT07", "WT08", "WT09", "WT10", "WT11",
	"WT12", "WT13", "WT14", "WT15", "WT16", "WT17", "WT18", "WT19", "WT20", "WT21", "WT22",

	// Weather in the vicinity.
	"WV01", "WV03", "WV07", "WV18", "WV20",
}

var supported = func() map[string]struct{} {
	m := make(map[string]struct{}, len(vocabulary))
	for _, code := range vocabulary {
		m[code] = struct{}{}
	}
	return m
}()

// Vocabulary returns a copy of the supported element codes.
func Vocabulary() []string {
	return append([]string(nil), vocabulary...)
}

// Supported reports whether code is a GHCN-Daily element.
func Supported(code string) bool {
	_, ok := supported[code]
	return ok
}
