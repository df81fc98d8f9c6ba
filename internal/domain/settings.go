package domain

import "time"

// AgencySettingsID is the fixed primary key of the singleton settings row.
const AgencySettingsID = 1

type AgencySettings struct {
	ID             int64     `db:"id" json:"id"`
	AgencyName     *string   `db:"agency_name" json:"agency_name"`
	LogoURL        *string   `db:"logo_url" json:"logo_url"`
	ContactPhone   *string   `db:"contact_phone" json:"contact_phone"`
	WhatsappNumber *string   `db:"whatsapp_number" json:"whatsapp_number"`
	SupportEmail   *string   `db:"support_email" json:"support_email"`
	Address        *string   `db:"address" json:"address"`
	InstagramURL   *string   `db:"instagram_url" json:"instagram_url"`
	FacebookURL    *string   `db:"facebook_url" json:"facebook_url"`
	TwitterURL     *string   `db:"twitter_url" json:"twitter_url"`
	YoutubeURL     *string   `db:"youtube_url" json:"youtube_url"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
