// Package chatbot 是離線時使用的關鍵字規則聊天機器人
package chatbot

import (
	"math/rand"
	"strings"
)

var (
	greetings = []string{
		"Hello! How can I assist you today?",
		"Hi there! What can I help you with?",
		"Welcome! How can I help with your health concerns?",
	}
	help = []string{
		"I can provide general health information, suggest home remedies for minor issues, and guide you on when to see a doctor. Please remember I'm not a substitute for professional medical advice.",
		"I'm here to help with health-related questions. What would you like to know?",
	}
	fever = []string{
		"For fever, rest and drink plenty of fluids. You can take acetaminophen or ibuprofen to reduce fever. If your temperature is above 103°F (39.4°C) or lasts more than 3 days, please consult a doctor.",
	}
	headache = []string{
		"For headaches, try resting in a quiet, dark room, applying a cool compress, and staying hydrated. Over-the-counter pain relievers may help. If headaches are severe or persistent, please see a doctor.",
	}
	cold = []string{
		"For a common cold, get plenty of rest, drink fluids, and consider over-the-counter cold medications. If symptoms persist beyond 10 days or worsen, consult a healthcare provider.",
	}
	stomachache = []string{
		"For mild stomachaches, try drinking clear fluids, eating bland foods, and avoiding dairy, caffeine, and fatty foods. If pain is severe or persists, seek medical attention.",
	}
	fallback = []string{
		"I'm sorry, I'm not sure how to help with that. For medical concerns, it's always best to consult with a healthcare professional.",
		"I don't have enough information about that. Please contact a doctor for specific medical advice.",
	}
)

type rule struct {
	keywords  []string
	responses []string
}

// 依序比對，先命中者勝出；比對為子字串包含，"this" 也會命中 "hi"
var rules = []rule{
	{keywords: []string{"hello", "hi", "hey"}, responses: greetings},
	{keywords: []string{"help", "what can you do"}, responses: help},
	{keywords: []string{"fever", "temperature"}, responses: fever},
	{keywords: []string{"headache", "head hurts"}, responses: headache},
	{keywords: []string{"cold", "flu", "cough"}, responses: cold},
	{keywords: []string{"stomach", "belly", "nausea"}, responses: stomachache},
}

// Responder 以關鍵字挑選固定回覆
type Responder struct {
	intn func(n int) int
}

func New() *Responder {
	return &Responder{intn: rand.Intn}
}

// Reply 回傳 message 對應的回覆，永遠不為空
func (r *Responder) Reply(message string) string {
	lower := strings.ToLower(message)
	for _, rl := range rules {
		for _, kw := range rl.keywords {
			if strings.Contains(lower, kw) {
				return r.pick(rl.responses)
			}
		}
	}
	return r.pick(fallback)
}

func (r *Responder) pick(options []string) string {
	if len(options) == 1 {
		return options[0]
	}
	return options[r.intn(len(options))]
}
