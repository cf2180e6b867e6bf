package entity

import "time"

// AboutUs is the single document behind the About page.
type AboutUs struct {
	ID                  string    `bson:"_id,omitempty" json:"id"`
	MainImageURL        string    `bson:"main_image_url" json:"main_image_url"`
	Description         string    `bson:"description" json:"description"`
	MeetTeamTitle       string    `bson:"meet_team_title" json:"meet_team_title"`
	MeetTeamSubtitle    string    `bson:"meet_team_subtitle" json:"meet_team_subtitle"`
	WhatWeDoTitle       string    `bson:"what_we_do_title" json:"what_we_do_title"`
	WhatWeDoDescription string    `bson:"what_we_do_description" json:"what_we_do_description"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updated_at"`
}

// StaffMember is a name listed in the "Meet the team" section.
type StaffMember struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	AboutUsID    string    `bson:"about_us_id" json:"about_us_id"`
	Name         string    `bson:"name" json:"name"`
	DisplayOrder int       `bson:"display_order" json:"display_order"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
