package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"swiftregistry/internal/api/handler"
	"swiftregistry/internal/model"
	"swiftregistry/internal/repository"
	"swiftregistry/internal/service"
	"swiftregistry/tests/mocks"
)

func TestHandlers(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Swift Handler Suite")
}

// A helper to create a Fiber app with our handler mounted on a route.
func setupApp(svc service.SwiftService) *fiber.App {
	app := fiber.New()
	h := handler.NewSwiftHandler(svc, zap.NewNop())

	app.Get("/swift/:swiftCode", h.GetByCode)
	app.Get("/country/:countryISO2code", h.GetByCountry)
	app.Post("/swift", h.Create)
	app.Delete("/swift/:swiftCode", h.Delete)

	return app
}

var _ = Describe("Swift Handler", func() {
	var (
		app     *fiber.App
		mockSvc *mocks.MockSwiftService
	)

	BeforeEach(func() {
		mockSvc = &mocks.MockSwiftService{}
	})

	Describe("GetByCode", func() {
		Context("when called with a valid SWIFT code", func() {
			It("should return the swift bank details", func() {
				mockSvc.GetSwiftCodeDetailsFunc = func(ctx context.Context, code string) (*repository.SwiftBankDetail, error) {
					return &repository.SwiftBankDetail{
						SwiftBank: model.SwiftBank{
							SwiftCode:      strings.ToUpper(code),
							BankName:       "Alior Bank",
							IsHeadquarters: true,
						},
						Branches: []model.SwiftBank{
							{SwiftCode: "ALBPPLP1BMW", BankName: "Alior Bank"},
						},
					}, nil
				}
				app = setupApp(mockSvc)
				req := httptest.NewRequest(http.MethodGet, "/swift/albpplp1xxx", nil)
				resp, err := app.Test(req, fiber.TestConfig{})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				var body map[string]any
				err = json.NewDecoder(resp.Body).Decode(&body)
				Expect(err).NotTo(HaveOccurred())
				Expect(body["swiftCode"]).To(Equal("ALBPPLP1XXX"))
				Expect(body["bankName"]).To(Equal("Alior Bank"))
				Expect(body["isHeadquarters"]).To(BeTrue())
				Expect(body["branches"]).To(HaveLen(1))
			})
		})

		Context("when called with a SWIFT code that is not found", func() {
			It("should return a not found error", func() {
				mockSvc.GetSwiftCodeDetailsFunc = func(ctx context.Context, code string) (*repository.SwiftBankDetail, error) {
					return nil, service.ErrNotFound
				}
				app = setupApp(mockSvc)
				req := httptest.NewRequest(http.MethodGet, "/swift/AAAABBCCXXX", nil)
				resp, err := app.Test(req, fiber.TestConfig{})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusNotFound))

				var body map[string]string
				err = json.NewDecoder(resp.Body).Decode(&body)
				Expect(err).NotTo(HaveOccurred())
				Expect(body["message"]).To(Equal("SWIFT code not found"))
			})
		})

		Context("when called with an invalid SWIFT code", func() {
			It("should return an invalid input error", func() {
				mockSvc.GetSwiftCodeDetailsFunc = func(ctx context.Context, code string) (*repository.SwiftBankDetail, error) {
					return nil, service.ErrInvalidInput
				}
				app = setupApp(mockSvc)
				req := httptest.NewRequest(http.MethodGet, "/swift/ABC123", nil)
				resp, err := app.Test(req, fiber.TestConfig{})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))

				var body map[string]string
				err = json.NewDecoder(resp.Body).Decode(&body)
				Expect(err).NotTo(HaveOccurred())
				Expect(body["message"]).To(Equal("Invalid input provided"))
			})
		})
	})

	Describe("GetByCountry", func() {
		Context("when called with a country that has swift codes", func() {
			It("should return a list of swift codes", func() {
				mockSvc.GetSwiftCodesByCountryFunc = func(ctx context.Context, countryCode string) (*repository.CountrySwiftCodes, error) {
					return &repository.CountrySwiftCodes{
						CountryISO2: strings.ToUpper(countryCode),
						CountryName: "POLAND",
						SwiftCodes: []model.SwiftBank{
							{SwiftCode: "ALBPPLP1XXX", BankName: "Alior Bank"},
							{SwiftCode: "ALBPPLP1BMW", BankName: "Alior Bank"},
						},
					}, nil
				}
				app = setupApp(mockSvc)
				req := httptest.NewRequest(http.MethodGet, "/country/pl", nil)
				resp, err := app.Test(req, fiber.TestConfig{})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				var countryCodes repository.CountrySwiftCodes
				err = json.NewDecoder(resp.Body).Decode(&countryCodes)
				Expect(err).NotTo(HaveOccurred())
				Expect(countryCodes.CountryISO2).To(Equal("PL"))
				Expect(countryCodes.SwiftCodes).To(HaveLen(2))
				Expect(countryCodes.SwiftCodes[0].SwiftCode).To(Equal("ALBPPLP1XXX"))
			})
		})
	})

	Describe("Create", func() {
		Context("when provided with valid swift code data", func() {
			It("should create a new swift code", func() {
				mockSvc.CreateSwiftCodeFunc = func(ctx context.Context, bank *model.SwiftBank) error {
					return nil
				}
				app = setupApp(mockSvc)
				bankData := model.SwiftBank{
					SwiftCode:      "AAAABBCCXXX",
					BankName:       "New Bank",
					CountryISO2:    "BB",
					CountryName:    "BARBADOS",
					IsHeadquarters: true,
				}
				bodyBytes, err := json.Marshal(bankData)
				Expect(err).NotTo(HaveOccurred())

				req := httptest.NewRequest(http.MethodPost, "/swift", bytes.NewReader(bodyBytes))
				req.Header.Set("Content-Type", "application/json")
				resp, err := app.Test(req, fiber.TestConfig{})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusCreated))

				var respBody map[string]string
				err = json.NewDecoder(resp.Body).Decode(&respBody)
				Expect(err).NotTo(HaveOccurred())
				Expect(respBody["message"]).To(Equal("SWIFT code created successfully"))
			})
		})

		Context("when provided with an invalid request body", func() {
			It("should return a bad request error", func() {
				mockSvc.CreateSwiftCodeFunc = func(ctx context.Context, bank *model.SwiftBank) error {
					return nil
				}
				app = setupApp(mockSvc)
				invalidJSON := `{"swiftCode": "AAAABBCCXXX",`
				req := httptest.NewRequest(http.MethodPost, "/swift", strings.NewReader(invalidJSON))
				req.Header.Set("Content-Type", "application/json")
				resp, err := app.Test(req, fiber.TestConfig{})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})
		})

		Context("when the headquarters flag disagrees with the code", func() {
			It("should return a bad request error", func() {
				mockSvc.CreateSwiftCodeFunc = func(ctx context.Context, bank *model.SwiftBank) error {
					return service.ErrHeadquarterMismatch
				}
				app = setupApp(mockSvc)
				bodyBytes, err := json.Marshal(model.SwiftBank{
					SwiftCode:      "AAAABBCC123",
					BankName:       "New Bank",
					CountryISO2:    "BB",
					CountryName:    "BARBADOS",
					IsHeadquarters: true,
				})
				Expect(err).NotTo(HaveOccurred())

				req := httptest.NewRequest(http.MethodPost, "/swift", bytes.NewReader(bodyBytes))
				req.Header.Set("Content-Type", "application/json")
				resp, err := app.Test(req, fiber.TestConfig{})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))

				var body map[string]string
				err = json.NewDecoder(resp.Body).Decode(&body)
				Expect(err).NotTo(HaveOccurred())
				Expect(body["message"]).To(ContainSubstring("XXX"))
			})
		})

		Context("when the country name conflicts with stored entries", func() {
			It("should return a bad request error", func() {
				mockSvc.CreateSwiftCodeFunc = func(ctx context.Context, bank *model.SwiftBank) error {
					return service.ErrCountryConflict
				}
				app = setupApp(mockSvc)
				bodyBytes, err := json.Marshal(model.SwiftBank{
					SwiftCode:      "ALBPPLP1XXX",
					BankName:       "Alior Bank",
					CountryISO2:    "PL",
					CountryName:    "HOLLAND",
					IsHeadquarters: true,
				})
				Expect(err).NotTo(HaveOccurred())

				req := httptest.NewRequest(http.MethodPost, "/swift", bytes.NewReader(bodyBytes))
				req.Header.Set("Content-Type", "application/json")
				resp, err := app.Test(req, fiber.TestConfig{})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))

				var body map[string]string
				err = json.NewDecoder(resp.Body).Decode(&body)
				Expect(err).NotTo(HaveOccurred())
				Expect(body["message"]).To(ContainSubstring("Country name"))
			})
		})

		Context("when the swift code already exists", func() {
			It("should return a conflict error", func() {
				mockSvc.CreateSwiftCodeFunc = func(ctx context.Context, bank *model.SwiftBank) error {
					return service.ErrAlreadyExists
				}
				app = setupApp(mockSvc)
				bodyBytes, err := json.Marshal(model.SwiftBank{
					SwiftCode:      "AAAABBCCXXX",
					BankName:       "New Bank",
					CountryISO2:    "BB",
					CountryName:    "BARBADOS",
					IsHeadquarters: true,
				})
				Expect(err).NotTo(HaveOccurred())

				req := httptest.NewRequest(http.MethodPost, "/swift", bytes.NewReader(bodyBytes))
				req.Header.Set("Content-Type", "application/json")
				resp, err := app.Test(req, fiber.TestConfig{})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("Delete", func() {
		Context("when deletion is successful", func() {
			It("should delete the swift code successfully", func() {
				mockSvc.DeleteSwiftCodeFunc = func(ctx context.Context, code string) error {
					return nil
				}
				app = setupApp(mockSvc)
				req := httptest.NewRequest(http.MethodDelete, "/swift/albpplp1bmw", nil)
				resp, err := app.Test(req, fiber.TestConfig{})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				var body map[string]string
				err = json.NewDecoder(resp.Body).Decode(&body)
				Expect(err).NotTo(HaveOccurred())
				Expect(body["message"]).To(Equal("SWIFT code deleted successfully"))
			})
		})

		Context("when deletion fails because the swift code is not found", func() {
			It("should return a not found error", func() {
				mockSvc.DeleteSwiftCodeFunc = func(ctx context.Context, code string) error {
					return service.ErrNotFound
				}
				app = setupApp(mockSvc)
				req := httptest.NewRequest(http.MethodDelete, "/swift/AAAABBCCXXX", nil)
				resp, err := app.Test(req, fiber.TestConfig{})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusNotFound))

				var body map[string]string
				err = json.NewDecoder(resp.Body).Decode(&body)
				Expect(err).NotTo(HaveOccurred())
				Expect(body["message"]).To(Equal("SWIFT code not found"))
			})
		})

		Context("when deletion fails due to invalid input", func() {
			It("should return an invalid input error", func() {
				mockSvc.DeleteSwiftCodeFunc = func(ctx context.Context, code string) error {
					return service.ErrInvalidInput
				}
				app = setupApp(mockSvc)
				req := httptest.NewRequest(http.MethodDelete, "/swift/NOPE", nil)
				resp, err := app.Test(req, fiber.TestConfig{})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))

				var body map[string]string
				err = json.NewDecoder(resp.Body).Decode(&body)
				Expect(err).NotTo(HaveOccurred())
				Expect(body["message"]).To(Equal("Invalid input provided"))
			})
		})
	})
})
