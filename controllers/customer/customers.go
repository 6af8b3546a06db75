package customerControllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/auth"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/storage"
)

const legalDocDir = "legal-docs"

func mapCustomerType(value string) (models.CustomerType, error) {
	switch models.CustomerType(value) {
	case models.CustomerTypeSeller:
		return models.CustomerTypeSeller, nil
	case models.CustomerTypeBuyer:
		return models.CustomerTypeBuyer, nil
	default:
		return "", errors.New("type must be seller or buyer")
	}
}

func mapCustomerStatus(value string) (models.CustomerStatus, error) {
	switch models.CustomerStatus(value) {
	case models.CustomerStatusPending, models.CustomerStatusApproved, models.CustomerStatusRejected:
		return models.CustomerStatus(value), nil
	default:
		return "", errors.New("invalid status value")
	}
}

func validateRegistration(name, password, customerType string) error {
	if len(name) < 3 || len(name) > 100 {
		return errors.New("name must be between 3 and 100 characters")
	}
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if _, err := mapCustomerType(customerType); err != nil {
		return err
	}
	return nil
}

// saveLegalDocs stores every uploaded legalDoc file, returning the stored
// references. On any failure the already-stored files are removed.
func saveLegalDocs(c *gin.Context, store storage.ImageStore) (models.ImageList, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	files := form.File["legalDoc"]
	var docs models.ImageList
	for _, file := range files {
		ref, err := store.Save(file, legalDocDir)
		if err != nil {
			for _, saved := range docs {
				store.Delete(saved)
			}
			return nil, err
		}
		docs = append(docs, ref)
	}
	return docs, nil
}

func deleteLegalDocs(store storage.ImageStore, docs models.ImageList) {
	for _, ref := range docs {
		store.Delete(ref)
	}
}

// POST /api/customers/register
func RegisterCustomer(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		phoneNo := c.PostForm("phoneNo")
		password := c.PostForm("password")
		customerType := c.PostForm("type")
		email := c.PostForm("email")
		licenseNo := c.PostForm("licenseNo")
		tin := c.PostForm("tin")

		legalDocs, err := saveLegalDocs(c, store)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store legal documents"})
			return
		}

		if err := validateRegistration(name, password, customerType); err != nil {
			deleteLegalDocs(store, legalDocs)
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		var existing models.Customer
		if err := db.Where("phone_no = ? OR email = ?", phoneNo, email).First(&existing).Error; err == nil {
			deleteLegalDocs(store, legalDocs)
			c.JSON(http.StatusConflict, gin.H{"message": "Phone number or email already exists."})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			deleteLegalDocs(store, legalDocs)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		status := models.CustomerStatusPending
		if models.CustomerType(customerType) == models.CustomerTypeBuyer {
			status = models.CustomerStatusApproved
		}

		customer := models.Customer{
			Name:      name,
			PhoneNo:   phoneNo,
			Password:  string(hashed),
			Email:     email,
			Type:      models.CustomerType(customerType),
			LicenseNo: licenseNo,
			LegalDoc:  legalDocs,
			Tin:       tin,
			Status:    status,
		}

		if err := db.Create(&customer).Error; err != nil {
			deleteLegalDocs(store, legalDocs)
			if strings.Contains(strings.ToLower(err.Error()), "unique") ||
				strings.Contains(strings.ToLower(err.Error()), "duplicate") {
				c.JSON(http.StatusConflict, gin.H{"message": "Duplicate field value exists."})
				return
			}
			log.Println("Register Customer Error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		// The token is issued immediately; a pending seller can authenticate
		// but login rejects the account until it is approved.
		token, err := auth.GenerateCustomerToken(customer.ID, customer.Type)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Registration successful",
			"customer": customer,
			"token":    token,
		})
	}
}

type LoginInput struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// POST /api/customers/login
func LoginCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Identifier == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Identifier and password are required."})
			return
		}

		var customer models.Customer
		if err := db.Where("phone_no = ? OR email = ?", input.Identifier, input.Identifier).
			First(&customer).Error; err != nil {
			// Same message for unknown identifier and bad password.
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		if customer.Status != models.CustomerStatusApproved {
			c.JSON(http.StatusForbidden, gin.H{"message": "Your account is not active yet."})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		token, err := auth.GenerateCustomerToken(customer.ID, customer.Type)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// POST /api/customers/logout
func LogoutCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// GET /api/customers
func GetCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if limit < 1 {
			limit = 10
		}

		var total int64
		if err := db.Model(&models.Customer{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		var customers []models.Customer
		if err := db.Order("created_at DESC").
			Limit(limit).
			Offset((page - 1) * limit).
			Find(&customers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total":      total,
			"page":       page,
			"totalPages": int(math.Ceil(float64(total) / float64(limit))),
			"customers":  customers,
		})
	}
}

// GET /api/customers/:id
func GetCustomerByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var customer models.Customer
		if err := db.First(&customer, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// PUT /api/customers/:id
func UpdateCustomer(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var customer models.Customer
		if err := db.First(&customer, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return
		}

		newDocs, err := saveLegalDocs(c, store)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store legal documents"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			if len(v) < 3 || len(v) > 100 {
				deleteLegalDocs(store, newDocs)
				c.JSON(http.StatusBadRequest, gin.H{"message": "name must be between 3 and 100 characters"})
				return
			}
			customer.Name = v
		}
		if v := c.PostForm("phoneNo"); v != "" {
			customer.PhoneNo = v
		}
		if v := c.PostForm("email"); v != "" {
			customer.Email = v
		}
		if v := c.PostForm("licenseNo"); v != "" {
			customer.LicenseNo = v
		}
		if v := c.PostForm("tin"); v != "" {
			customer.Tin = v
		}
		if v := c.PostForm("type"); v != "" {
			customerType, err := mapCustomerType(v)
			if err != nil {
				deleteLegalDocs(store, newDocs)
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			customer.Type = customerType
		}
		if v := c.PostForm("password"); v != "" {
			if len(v) < 6 {
				deleteLegalDocs(store, newDocs)
				c.JSON(http.StatusBadRequest, gin.H{"message": "password must be at least 6 characters"})
				return
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(v), bcrypt.DefaultCost)
			if err != nil {
				deleteLegalDocs(store, newDocs)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
			customer.Password = string(hashed)
		}
		if len(newDocs) > 0 {
			deleteLegalDocs(store, customer.LegalDoc)
			customer.LegalDoc = newDocs
		}

		if err := db.Save(&customer).Error; err != nil {
			deleteLegalDocs(store, newDocs)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Customer updated successfully",
			"customer": customer,
		})
	}
}

type StatusInput struct {
	Status string `json:"status"`
}

// PATCH /api/customers/:id/status is staff only; only sellers go through the
// approval workflow.
func UpdateCustomerStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input StatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
			return
		}

		status, err := mapCustomerStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
			return
		}

		var customer models.Customer
		if err := db.First(&customer, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return
		}

		if customer.Type != models.CustomerTypeSeller {
			c.JSON(http.StatusForbidden, gin.H{"message": "Status update allowed only for sellers"})
			return
		}
		if customer.Status == status {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Customer is already " + string(status)})
			return
		}
		if customer.Status == models.CustomerStatusApproved && status == models.CustomerStatusPending {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot revert approved customer back to pending"})
			return
		}

		customer.Status = status
		if err := db.Save(&customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Customer status updated successfully",
			"customer": customer,
		})
	}
}

// DELETE /api/customers/:id
func DeleteCustomer(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var customer models.Customer
		if err := db.First(&customer, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return
		}

		deleteLegalDocs(store, customer.LegalDoc)

		if err := db.Delete(&customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
	}
}
