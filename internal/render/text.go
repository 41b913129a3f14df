package render

import "vocabflash/internal/domain"

// Text keys
const (
	keyLangName  = "lang-name"
	keySiteTitle = "site-title"
	keyPronounce = "pronounce"
	keyKnow      = "know"
	keyDontKnow  = "dont-know"
	keyRight     = "right"
	keyWrong     = "wrong"
	keySkip      = "skip"
	keyNext      = "next"
	keyFinished  = "finished"
	keyPosition  = "position"
)

var texts = map[domain.Language]map[string]string{
	domain.SimplifiedChinese: {
		keyLangName:  "中文",
		keySiteTitle: "背单词，记概念，值得拥有",
		keyPronounce: "发音",
		keyKnow:      "知道",
		keyDontKnow:  "不知道",
		keyRight:     "正确",
		keyWrong:     "记错了",
		keySkip:      "跳过",
		keyNext:      "下一个",
		keyFinished:  "所有单词都复习完了",
		keyPosition:  "第 %d / %d 个",
	},
	domain.Japanese: {
		keyLangName:  "日本語",
		keySiteTitle: "単語を覚えよう",
		keyPronounce: "発音",
		keyKnow:      "知っている",
		keyDontKnow:  "知らない",
		keyRight:     "正解",
		keyWrong:     "間違えた",
		keySkip:      "スキップ",
		keyNext:      "次へ",
		keyFinished:  "すべての単語を復習しました",
		keyPosition:  "%d / %d",
	},
	domain.English: {
		keyLangName:  "English",
		keySiteTitle: "Memorize foreign vocab? new concept? USE the app",
		keyPronounce: "Pronounce",
		keyKnow:      "I know",
		keyDontKnow:  "I don't know",
		keyRight:     "Right",
		keyWrong:     "Wrong",
		keySkip:      "Skip",
		keyNext:      "Next",
		keyFinished:  "You have reviewed every word",
		keyPosition:  "%d of %d",
	},
}

// text looks up a label, falling back to English
func text(lang domain.Language, key string) string {
	if t, ok := texts[lang][key]; ok {
		return t
	}
	return texts[domain.English][key]
}
