package moderation

type BadWord struct {
	Original    string `json:"original"`
	Word        string `json:"word"`
	Deviations  int64  `json:"deviations"`
	Info        int64  `json:"info"`
	ReplacedLen int64  `json:"replacedLen"`
}

// BadWordsResponse is the success payload of the bad_words endpoint.
type BadWordsResponse struct {
	Content         string    `json:"content"`
	BadWordsTotal   int64     `json:"bad_words_total"`
	BadWordsList    []BadWord `json:"bad_words_list"`
	CensoredContent string    `json:"censored_content"`
}

// badWordsPayload mirrors BadWordsResponse with a pointer for the one field the
// service cannot work without, so a body missing it is rejected.
type badWordsPayload struct {
	Content         string    `json:"content"`
	BadWordsTotal   int64     `json:"bad_words_total"`
	BadWordsList    []BadWord `json:"bad_words_list"`
	CensoredContent *string   `json:"censored_content"`
}

type upstreamReply struct {
	status int
	body   []byte
}
