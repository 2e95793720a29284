package validation

import (
	"bytes"
	"strings"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }

func validPlotInput() PlotInput {
	return PlotInput{
		PlotNumber:  "A-101",
		VillageName: "Greenfield",
		AreaName:    "North Sector",
		PlotSize:    "2400 sqft",
		PlotFacing:  "East",
	}
}

func TestCheck_ValidPlot(t *testing.T) {
	if fields := Check(validPlotInput()); fields != nil {
		t.Errorf("expected no violations, got %v", fields)
	}
}

func TestCheck_AccumulatesAllViolations(t *testing.T) {
	in := PlotInput{
		PlotNumber:  "",
		VillageName: "",
		AreaName:    strings.Repeat("x", 101),
		PlotSize:    "",
		PlotFacing:  "Up",
		Price:       floatPtr(-5),
	}
	fields := Check(in)
	if fields == nil {
		t.Fatal("expected violations, got none")
	}
	for _, key := range []string{"plotNumber", "villageName", "areaName", "plotSize", "plotFacing", "price"} {
		if len(fields[key]) == 0 {
			t.Errorf("expected a violation for %q, got none; fields = %v", key, fields)
		}
	}
}

func TestCheck_PlotMessages(t *testing.T) {
	in := PlotInput{PlotFacing: "Sideways"}
	fields := Check(in)
	if fields == nil {
		t.Fatal("expected violations, got none")
	}
	tests := []struct {
		field string
		want  string
	}{
		{"plotNumber", "Plot number is required."},
		{"villageName", "Village name is required."},
		{"areaName", "Area name is required."},
		{"plotSize", "Plot size is required."},
		{"plotFacing", "Please select a plot facing direction."},
	}
	for _, tt := range tests {
		got := fields[tt.field]
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("fields[%q] = %v; want [%q]", tt.field, got, tt.want)
		}
	}
}

func TestCheck_PlotFacingEnum(t *testing.T) {
	facings := []string{"North", "South", "East", "West", "North-East", "North-West", "South-East", "South-West"}
	for _, f := range facings {
		in := validPlotInput()
		in.PlotFacing = f
		if fields := Check(in); fields != nil {
			t.Errorf("facing %q: expected valid, got %v", f, fields)
		}
	}
	in := validPlotInput()
	in.PlotFacing = "north"
	if fields := Check(in); fields == nil {
		t.Error("lowercase facing should be rejected")
	}
}

func TestCheck_PlotStatusEnum(t *testing.T) {
	for _, s := range []string{"Available", "Reserved", "Sold", "Under Negotiation", ""} {
		in := validPlotInput()
		in.Status = s
		if fields := Check(in); fields != nil {
			t.Errorf("status %q: expected valid, got %v", s, fields)
		}
	}
	in := validPlotInput()
	in.Status = "Pending"
	fields := Check(in)
	if len(fields["status"]) != 1 || fields["status"][0] != "Please select a valid status." {
		t.Errorf("fields[status] = %v; want the status message", fields["status"])
	}
}

func TestCheck_UserMessages(t *testing.T) {
	fields := Check(UserInput{Email: "not-an-email", Password: "short"})
	if got := fields["email"]; len(got) != 1 || got[0] != "Please enter a valid email address." {
		t.Errorf("fields[email] = %v", got)
	}
	if got := fields["password"]; len(got) != 1 || got[0] != "Password must be at least 8 characters long." {
		t.Errorf("fields[password] = %v", got)
	}
}

func TestCheck_EmptyPasswordUsesMinMessage(t *testing.T) {
	fields := Check(UserInput{Email: "a@b.com", Password: ""})
	if got := fields["password"]; len(got) != 1 || got[0] != "Password must be at least 8 characters long." {
		t.Errorf("fields[password] = %v", got)
	}
}

func TestCheck_EmailWordingPerSchema(t *testing.T) {
	if got := Check(ContactInput{Name: "N", Phone: "1", Email: "bad", Type: "Seller"})["email"]; len(got) != 1 || got[0] != "Please enter a valid email." {
		t.Errorf("contact email message = %v", got)
	}
	if got := Check(RegistrationInput{Name: "N", Phone: "1", Email: "bad"})["email"]; len(got) != 1 || got[0] != "A valid email is required." {
		t.Errorf("registration email message = %v", got)
	}
	if got := Check(InquiryInput{Name: "N", Email: "bad", Message: "long enough text"})["email"]; len(got) != 1 || got[0] != "A valid email is required." {
		t.Errorf("inquiry email message = %v", got)
	}
}

func TestCheck_RegistrationPhoneMessage(t *testing.T) {
	fields := Check(RegistrationInput{Name: "N", Phone: "", Email: "a@b.com"})
	if got := fields["phone"]; len(got) != 1 || got[0] != "A valid phone number is required." {
		t.Errorf("fields[phone] = %v", got)
	}
	fields = Check(ContactInput{Name: "N", Phone: "", Email: "a@b.com", Type: "Buyer"})
	if got := fields["phone"]; len(got) != 1 || got[0] != "Phone number is required." {
		t.Errorf("contact fields[phone] = %v", got)
	}
}

func TestCheck_InquiryMessageBounds(t *testing.T) {
	fields := Check(InquiryInput{Name: "N", Email: "a@b.com", Message: "too short"})
	if got := fields["message"]; len(got) != 1 || got[0] != "Message must be at least 10 characters." {
		t.Errorf("fields[message] = %v", got)
	}
	fields = Check(InquiryInput{Name: "N", Email: "a@b.com", Message: strings.Repeat("x", 1001)})
	if got := fields["message"]; len(got) != 1 || got[0] != "Message must be less than 1000 characters." {
		t.Errorf("fields[message] = %v", got)
	}
}

func TestCheckImage(t *testing.T) {
	tests := []struct {
		name string
		img  ImageUpload
		want []string
	}{
		{
			name: "valid image",
			img:  ImageUpload{Data: []byte("png bytes"), ContentType: "image/png"},
			want: nil,
		},
		{
			name: "empty upload short-circuits",
			img:  ImageUpload{ContentType: "application/pdf"},
			want: []string{MsgImageRequired},
		},
		{
			name: "wrong media type",
			img:  ImageUpload{Data: []byte("%PDF"), ContentType: "application/pdf"},
			want: []string{MsgInvalidImage},
		},
		{
			name: "too large",
			img:  ImageUpload{Data: bytes.Repeat([]byte{0xff}, ImageMaxSize), ContentType: "image/jpeg"},
			want: []string{MsgImageTooLarge},
		},
		{
			name: "wrong type and too large accumulate",
			img:  ImageUpload{Data: bytes.Repeat([]byte{0xff}, ImageMaxSize), ContentType: "text/plain"},
			want: []string{MsgInvalidImage, MsgImageTooLarge},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckImage(tt.img)
			if len(got) != len(tt.want) {
				t.Fatalf("CheckImage = %v; want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("CheckImage[%d] = %q; want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCheckPassword(t *testing.T) {
	if msgs := CheckPassword("correct horse"); msgs != nil {
		t.Errorf("expected valid password, got %v", msgs)
	}
	if msgs := CheckPassword("short"); len(msgs) != 1 || msgs[0] != "Password must be at least 8 characters long." {
		t.Errorf("CheckPassword(short) = %v", msgs)
	}
	if msgs := CheckPassword(strings.Repeat("p", 129)); len(msgs) != 1 || msgs[0] != "Password must be less than 128 characters." {
		t.Errorf("CheckPassword(long) = %v", msgs)
	}
}
