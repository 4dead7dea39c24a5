// models/vendor.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vendor statuses
const (
	VendorStatusActive   = "Active"
	VendorStatusInactive = "Inactive"
	VendorStatusPending  = "Pending"
)

type Vendor struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BusinessName string             `json:"businessName" bson:"businessName"`
	OwnerName    string             `json:"ownerName,omitempty" bson:"ownerName,omitempty"`
	Category     string             `json:"category,omitempty" bson:"category,omitempty"`
	SubCategory  string             `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	Contact      VendorContact      `json:"contact" bson:"contact"`
	Location     VendorLocation     `json:"location" bson:"location"`
	Documents    VendorDocuments    `json:"documents" bson:"documents"`
	Banking      VendorBanking      `json:"banking" bson:"banking"`
	Hours        VendorHours        `json:"businessHours" bson:"businessHours"`
	Media        VendorMedia        `json:"media" bson:"media"`
	Status       string             `json:"status" bson:"status"` // "Active", "Inactive", "Pending"
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`

	// Legacy flat keys. Older vendor documents carry these at the top level
	// instead of inside the nested blocks; Normalize folds them in on read.
	LegacyEmail       string  `json:"-" bson:"email,omitempty"`
	LegacyPhone       string  `json:"-" bson:"phone,omitempty"`
	LegacyWhatsApp    string  `json:"-" bson:"whatsapp,omitempty"`
	LegacyAddress     string  `json:"-" bson:"address,omitempty"`
	LegacyLatitude    float64 `json:"-" bson:"latitude,omitempty"`
	LegacyLongitude   float64 `json:"-" bson:"longitude,omitempty"`
	LegacyGSTNumber   string  `json:"-" bson:"gstNumber,omitempty"`
	LegacyRegNumber   string  `json:"-" bson:"registrationNumber,omitempty"`
	LegacyAccountNo   string  `json:"-" bson:"accountNumber,omitempty"`
	LegacyIFSC        string  `json:"-" bson:"ifsc,omitempty"`
	LegacyUPIID       string  `json:"-" bson:"upiId,omitempty"`
	LegacyLogo        string  `json:"-" bson:"logo,omitempty"`
}

type VendorContact struct {
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
}

type VendorLocation struct {
	Address   string  `json:"address,omitempty" bson:"address,omitempty"`
	Latitude  float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
}

type VendorDocuments struct {
	GSTNumber          string `json:"gstNumber,omitempty" bson:"gstNumber,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty" bson:"registrationNumber,omitempty"`
	IDDocumentURL      string `json:"idDocumentUrl,omitempty" bson:"idDocumentUrl,omitempty"`
	AgreementURL       string `json:"agreementUrl,omitempty" bson:"agreementUrl,omitempty"`
}

type VendorBanking struct {
	AccountNumber string `json:"accountNumber,omitempty" bson:"accountNumber,omitempty"`
	IFSC          string `json:"ifsc,omitempty" bson:"ifsc,omitempty"`
	UPIID         string `json:"upiId,omitempty" bson:"upiId,omitempty"`
}

type VendorHours struct {
	OpeningTime   string   `json:"openingTime,omitempty" bson:"openingTime,omitempty"`
	ClosingTime   string   `json:"closingTime,omitempty" bson:"closingTime,omitempty"`
	OperatingDays []string `json:"operatingDays,omitempty" bson:"operatingDays,omitempty"`
}

type VendorMedia struct {
	Logo          string   `json:"logo,omitempty" bson:"logo,omitempty"`
	LogoThumb     string   `json:"logoThumb,omitempty" bson:"logoThumb,omitempty"`
	ShopImages    []string `json:"shopImages,omitempty" bson:"shopImages,omitempty"`
	MenuImages    []string `json:"menuImages,omitempty" bson:"menuImages,omitempty"`
	InteriorPhoto string   `json:"interiorPhoto,omitempty" bson:"interiorPhoto,omitempty"`
}

// Normalize folds legacy flat keys into the nested blocks. Nested values win
// when both are present. The flat fields are cleared so encoding the vendor
// back out writes only the nested shape.
func (v *Vendor) Normalize() {
	if v == nil {
		return
	}

	if v.Contact.Email == "" {
		v.Contact.Email = v.LegacyEmail
	}
	if v.Contact.Phone == "" {
		v.Contact.Phone = v.LegacyPhone
	}
	if v.Contact.WhatsApp == "" {
		v.Contact.WhatsApp = v.LegacyWhatsApp
	}

	if v.Location.Address == "" {
		v.Location.Address = v.LegacyAddress
	}
	if v.Location.Latitude == 0 {
		v.Location.Latitude = v.LegacyLatitude
	}
	if v.Location.Longitude == 0 {
		v.Location.Longitude = v.LegacyLongitude
	}

	if v.Documents.GSTNumber == "" {
		v.Documents.GSTNumber = v.LegacyGSTNumber
	}
	if v.Documents.RegistrationNumber == "" {
		v.Documents.RegistrationNumber = v.LegacyRegNumber
	}

	if v.Banking.AccountNumber == "" {
		v.Banking.AccountNumber = v.LegacyAccountNo
	}
	if v.Banking.IFSC == "" {
		v.Banking.IFSC = v.LegacyIFSC
	}
	if v.Banking.UPIID == "" {
		v.Banking.UPIID = v.LegacyUPIID
	}

	if v.Media.Logo == "" {
		v.Media.Logo = v.LegacyLogo
	}

	v.LegacyEmail = ""
	v.LegacyPhone = ""
	v.LegacyWhatsApp = ""
	v.LegacyAddress = ""
	v.LegacyLatitude = 0
	v.LegacyLongitude = 0
	v.LegacyGSTNumber = ""
	v.LegacyRegNumber = ""
	v.LegacyAccountNo = ""
	v.LegacyIFSC = ""
	v.LegacyUPIID = ""
	v.LegacyLogo = ""
}
