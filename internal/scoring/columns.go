package scoring

// Column labels as produced by the extractor for CBS stats pages.
const (
	PassingTD      = "td (Touchdowns Passes)"
	PassingYards   = "yds (Passing Yards)"
	Interceptions  = "int (Interceptions Thrown)"
	RushingYards   = "yds (Rushing Yards)"
	RushingTD      = "td (Rushing Touchdowns)"
	ReceivingYards = "yds (Receiving Yards)"
	ReceivingTD    = "td (Receiving Touchdowns)"
	FumblesLost    = "fl (Fumbles Lost)"

	ReceivingFirstDowns = "ReFD (Receiving First Down)"
	RushingFirstDowns   = "RuFD (Rushing First Down)"

	DefInterceptions     = "int (Interceptions)"
	Safeties             = "sfty (Safeties)"
	Sacks                = "sck (Sacks)"
	FumblesRecovered     = "frec (Defensive Fumbles Recovered)"
	DefensiveTD          = "dtd (Defensive Touchdowns)"
	PointsAllowedPerGame = "ppg (Points Allowed Per Game)"
)

// YardsPerFirstDown is the yardage credited as one derived first down
const YardsPerFirstDown = 20.0
