package board

// These multiplier grids are ported digit-for-digit from the teacher's
// WORD_MULTIPLIERS_STANDARD / LETTER_MULTIPLIERS_STANDARD /
// WORD_MULTIPLIERS_EXPLO / LETTER_MULTIPLIERS_EXPLO tables in board.go.
// Each character is the multiplier of that square; '1' means no premium.

var wordMultipliersStandard = [Dim]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

var letterMultipliersStandard = [Dim]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

var wordMultipliersExplo = [Dim]string{
	"311111131111113",
	"111111112111111",
	"111111111211111",
	"111211111111111",
	"111121111111111",
	"111112111111211",
	"111111211111121",
	"311111121111113",
	"121111112111111",
	"112111111211111",
	"111111111121111",
	"111111111112111",
	"111112111111111",
	"111111211111111",
	"311111131111113",
}

var letterMultipliersExplo = [Dim]string{
	"111121111112111",
	"131112111111131",
	"112111311111211",
	"111111121131112",
	"211111111113111",
	"121111111211111",
	"113111112111111",
	"111211111112111",
	"111111211111311",
	"111112111111121",
	"111311111111112",
	"211131121111111",
	"112111113111211",
	"131111111211131",
	"111211111121111",
}
