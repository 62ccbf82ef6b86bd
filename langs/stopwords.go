/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package langs

// NoStopWords is the stop word pack that removes nothing.
const NoStopWords = "_none_"

// Built-in stop word packs of the search engine.
var stopPacks = map[string]string{
	"ar":     "_arabic_",
	"hy":     "_armenian_",
	"eu":     "_basque_",
	"pt-br":  "_brazilian_",
	"bg":     "_bulgarian_",
	"ca":     "_catalan_",
	"cs":     "_czech_",
	"da":     "_danish_",
	"nl":     "_dutch_",
	"en":     "_english_",
	"en-ca":  "_english_",
	"en-gb":  "_english_",
	"simple": "_english_",
	"fi":     "_finnish_",
	"fr":     "_french_",
	"gl":     "_galician_",
	"de":     "_german_",
	"el":     "_greek_",
	"hi":     "_hindi_",
	"hu":     "_hungarian_",
	"id":     "_indonesian_",
	"lt":     "_lithuanian_",
	"lv":     "_latvian_",
	"ga":     "_irish_",
	"it":     "_italian_",
	"nb":     "_norwegian_",
	"nn":     "_norwegian_",
	"fa":     "_persian_",
	"pt":     "_portuguese_",
	"ro":     "_romanian_",
	"ru":     "_russian_",
	"ckb":    "_sorani_",
	"es":     "_spanish_",
	"sv":     "_swedish_",
	"th":     "_thai_",
	"tr":     "_turkish_",
}

// StopPack returns the built-in stop word pack for code, NoStopWords when
// there is none.
func StopPack(code string) string {
	if pack, ok := stopPacks[code]; ok {
		return pack
	}
	return NoStopWords
}

// HasStopPack tells whether code has a built-in stop word pack.
func HasStopPack(code string) bool {
	_, ok := stopPacks[code]
	return ok
}

// PolishStopWords returns the stop words applied before Stempel stemming.
func PolishStopWords() []string { return append([]string(nil), polishStopWords...) }

// MirandeseStopWords returns the Mirandese stop words.
func MirandeseStopWords() []string { return append([]string(nil), mirandeseStopWords...) }

// StempelBadStems are stems Stempel produces too often to be useful.
func StempelBadStems() []string { return append([]string(nil), stempelBadStems...) }

var stempelBadStems = []string{"ować", "iwać", "obić", "snąć", "ywać", "ium", "my", "um"}

var polishStopWords = []string{
	"a", "aby", "ach", "acz", "aczkolwiek", "aj", "albo", "ale", "ależ", "ani",
	"aż", "bardziej", "bardzo", "bo", "bowiem", "by", "byli", "bynajmniej",
	"być", "był", "była", "było", "były", "będzie", "będą", "cali", "cała",
	"cały", "ci", "cię", "ciebie", "co", "cokolwiek", "coś", "czasami",
	"czasem", "czemu", "czy", "czyli", "daleko", "dla", "dlaczego", "dlatego",
	"do", "dobrze", "dokąd", "dość", "dużo", "dwa", "dwaj", "dwie", "dwoje",
	"dziś", "dzisiaj", "gdy", "gdyby", "gdyż", "gdzie", "gdziekolwiek",
	"gdzieś", "i", "ich", "ile", "im", "inna", "inne", "inny", "innych", "iż",
	"ja", "ją", "jak", "jakaś", "jakby", "jaki", "jakichś", "jakie", "jakiś",
	"jakiż", "jakkolwiek", "jako", "jakoś", "je", "jeden", "jedna", "jedno",
	"jednak", "jednakże", "jego", "jej", "jemu", "jest", "jestem", "jeszcze",
	"jeśli", "jeżeli", "już", "każdy", "kiedy", "kilka", "kimś", "kto",
	"ktokolwiek", "ktoś", "która", "które", "którego", "której", "który",
	"których", "którym", "którzy", "ku", "lecz", "lub", "ma", "mają", "mało",
	"mam", "mi", "mimo", "między", "mną", "mnie", "mogą", "moi", "moim",
	"moja", "moje", "może", "możliwe", "można", "mój", "mu", "musi", "na",
	"nad", "nam", "nami", "nas", "nasi", "nasz", "nasza", "nasze", "naszego",
	"naszych", "natomiast", "natychmiast", "nawet", "nią", "nic", "nich",
	"nie", "niech", "niego", "niej", "niemu", "nigdy", "nim", "nimi", "niż",
	"no", "o", "obok", "od", "około", "on", "ona", "one", "oni", "ono", "oraz",
	"oto", "owszem", "pan", "pana", "pani", "po", "pod", "podczas", "pomimo",
	"ponad", "ponieważ", "powinien", "powinna", "powinni", "powinno", "poza",
	"prawie", "przecież", "przed", "przede", "przedtem", "przez", "przy",
	"również", "sam", "sama", "są", "się", "skąd", "sobie", "sobą", "swoje",
	"ta", "tak", "taka", "taki", "takie", "także", "tam", "te", "tego", "tej",
	"temu", "ten", "teraz", "też", "to", "tobą", "tobie", "toteż", "trzeba",
	"tu", "tutaj", "twoi", "twoim", "twoja", "twoje", "twym", "twój", "ty",
	"tych", "tylko", "tym", "u", "w", "wam", "wami", "was", "wasz", "wasza",
	"wasze", "we", "według", "wiele", "wielu", "więc", "więcej", "wszyscy",
	"wszystkich", "wszystkie", "wszystkim", "wszystko", "wtedy", "wy",
	"właśnie", "z", "za", "zapewne", "zawsze", "ze", "znowu", "znów",
	"został", "żaden", "żadna", "żadne", "żadnych", "że", "żeby",
}

var mirandeseStopWords = []string{
	"a", "al", "als", "ambos", "an", "ante", "antes", "antre", "ao", "apuis",
	"aqueilha", "aqueilhas", "aqueilho", "aquel", "aqueles", "aqui", "assi",
	"até", "bós", "bosso", "bossa", "bossos", "bossas", "cada", "cul", "culs",
	"cumo", "cun", "d", "da", "dal", "dalguns", "das", "de", "del", "dels",
	"deilha", "deilhas", "dun", "dua", "dues", "eilha", "eilhas",
	"eilhi", "eiles", "el", "eiqui", "ende", "era", "éran", "eras", "esse",
	"essa", "esta", "este", "fui", "fusse", "habie", "hai", "i", "l", "la",
	"las", "ls", "mais", "me", "mesmo", "mie", "mies", "miu", "mius", "muito",
	"na", "nas", "ne", "nien", "nó", "nós", "nun", "nuosso", "nuossa",
	"nuossos", "nuossas", "ou", "outro", "outra", "pa", "para", "pul", "puls",
	"purque", "qu", "quando", "que", "quien", "se", "sien", "sou", "sous",
	"sue", "sues", "tamien", "tan", "te", "ten", "tener", "to", "tou", "tous",
	"tu", "tue", "tues", "ũa", "ũas", "un", "uns", "yá", "you",
}
