package engine

import (
	"github.com/talentscout/hiring-assistant/internal/profile"
	"github.com/talentscout/hiring-assistant/internal/sentiment"
)

// Greeting opens every session and explains scope and the exit keywords.
const Greeting = "Hello! I'm TalentScout, your hiring assistant. " +
	"I'll collect your basic details (name, contact, experience, position, location, tech stack) " +
	"and then ask a few tailored technical questions. You can type 'exit' anytime to end. " +
	"Could you share your full name?"

var askPrompts = map[profile.Field]string{
	profile.FieldFullName:        "Could you share your full name?",
	profile.FieldEmail:           "Please provide your email address.",
	profile.FieldPhone:           "What is your phone number (with country code if applicable)?",
	profile.FieldExperienceYears: "How many years of professional experience do you have? (e.g., 2 or 2.5)",
	profile.FieldDesiredPosition: "What role are you targeting? (e.g., Data Scientist, Backend Engineer)",
	profile.FieldLocation:        "Where are you currently located (city, country)?",
	profile.FieldTechStack:       "Please list your tech stack (languages, frameworks, databases, tools).",
}

var clarifyPrompts = map[profile.Field]string{
	profile.FieldFullName:        "I didn't catch your name. Please type your first and last name, e.g. 'Jane Doe'.",
	profile.FieldEmail:           "That doesn't look like an email address. Please use the format name@example.com.",
	profile.FieldPhone:           "I couldn't read that as a phone number. Please use digits, e.g. +1 415 555 0100.",
	profile.FieldExperienceYears: "Please give your experience as a number of years, e.g. '3' or '2.5 years'.",
	profile.FieldDesiredPosition: "Please name the role you're targeting in a few words, e.g. 'Backend Engineer'.",
	profile.FieldLocation:        "Please tell me your location in a few words, e.g. 'Berlin, Germany'.",
	profile.FieldTechStack:       "Please list at least one technology, separated by commas, e.g. 'Python, Django, PostgreSQL'.",
}

var acknowledgments = map[profile.Field]string{
	profile.FieldFullName:        "Nice to meet you!",
	profile.FieldEmail:           "Got your email.",
	profile.FieldPhone:           "Got your phone number.",
	profile.FieldExperienceYears: "Thanks, noted your experience.",
	profile.FieldDesiredPosition: "Great choice of role.",
	profile.FieldLocation:        "Thanks, noted your location.",
	profile.FieldTechStack:       "Thanks for sharing your stack.",
}

func askPrompt(field profile.Field) string {
	if p, ok := askPrompts[field]; ok {
		return p
	}
	return "Could you tell me more?"
}

func clarifyPrompt(field profile.Field) string {
	if p, ok := clarifyPrompts[field]; ok {
		return p
	}
	return "Sorry, I didn't understand that. Could you rephrase?"
}

func acknowledge(field profile.Field) string {
	if a, ok := acknowledgments[field]; ok {
		return a
	}
	return "Thanks!"
}

// farewell mirrors the sentiment cue of the exiting turn, supporting a
// struggling candidate a little more warmly.
func farewell(tone sentiment.Tone) string {
	switch tone {
	case sentiment.Negative:
		return "Thank you for your time, and sorry for any confusion. We'll review your details and get back to you with next steps."
	case sentiment.Positive:
		return "Thank you for your time, glad it went smoothly! We'll review your details and get back to you with next steps."
	default:
		return "Thank you for your time! We'll review your details and get back to you with next steps."
	}
}

// closingAck answers any input after the session has ended.
func closingAck(reason EndReason) string {
	if reason == EndCompleted {
		return "This session is complete. Thank you again - we'll be in touch with next steps."
	}
	return "This session has ended. Feel free to start a new one whenever you're ready."
}
