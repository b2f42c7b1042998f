package v1

// NearbyDonorsRequest DTO для поиска доноров рядом
// @Description DTO для поиска доноров рядом. distance задается в километрах, по умолчанию 10
type NearbyDonorsRequest struct {
	Latitude   *float64 `json:"latitude" validate:"required,latitude"`
	Longitude  *float64 `json:"longitude" validate:"required,longitude"`
	BloodGroup string   `json:"bloodGroup" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Distance   *float64 `json:"distance,omitempty"`
}

// DonorResponse DTO донора в результатах поиска
// @Description DTO донора в результатах поиска
type DonorResponse struct {
	FullName        string `json:"fullName"`
	BloodGroup      string `json:"bloodGroup"`
	City            string `json:"city"`
	Age             int    `json:"age"`
	DistanceFromYou string `json:"distanceFromYou"`
}

// NearbyDonorsResponse DTO для ответа на поиск доноров
// @Description DTO для ответа на поиск доноров
type NearbyDonorsResponse struct {
	Count  int              `json:"count"`
	Donors []*DonorResponse `json:"donors"`
}

// CoordinatesRequest DTO координат пользователя
type CoordinatesRequest struct {
	Lat  *float64 `json:"lat" validate:"required,latitude"`
	Long *float64 `json:"long" validate:"required,longitude"`
}

// RegisterDonorRequest DTO для регистрации донора
// @Description DTO для регистрации донора
type RegisterDonorRequest struct {
	FullName    string              `json:"fullName" validate:"required,min=2,max=255"`
	Email       string              `json:"email" validate:"required,email"`
	Phone       string              `json:"phone" validate:"required,min=5,max=20"`
	Password    string              `json:"password" validate:"required,min=6,max=72"`
	Age         int                 `json:"age,omitempty" validate:"omitempty,gte=18,lte=65"`
	Gender      string              `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address     string              `json:"address,omitempty" validate:"omitempty,max=500"`
	City        string              `json:"city,omitempty" validate:"omitempty,max=100"`
	BloodGroup  string              `json:"bloodGroup" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Coordinates *CoordinatesRequest `json:"coordinates" validate:"required"`
}

// RegisterGuestRequest DTO для экстренной регистрации гостя
// @Description DTO для экстренной регистрации гостя
type RegisterGuestRequest struct {
	FullName   string `json:"fullName" validate:"required,min=2,max=255"`
	Phone      string `json:"phone" validate:"required,min=5,max=20"`
	BloodGroup string `json:"bloodGroup" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	City       string `json:"city,omitempty" validate:"omitempty,max=100"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
}

// CompleteProfileRequest DTO для завершения профиля гостя
// @Description DTO для завершения профиля гостя
type CompleteProfileRequest struct {
	Email       string              `json:"email" validate:"required,email"`
	Password    string              `json:"password" validate:"required,min=6,max=72"`
	Age         int                 `json:"age,omitempty" validate:"omitempty,gte=18,lte=65"`
	Gender      string              `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address     string              `json:"address,omitempty" validate:"omitempty,max=500"`
	City        string              `json:"city,omitempty" validate:"omitempty,max=100"`
	Coordinates *CoordinatesRequest `json:"coordinates" validate:"required"`
}

// RegisterResponse DTO для ответа на регистрацию
// @Description DTO для ответа на регистрацию
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// SendRequestRequest DTO для отправки запроса крови донору
// @Description DTO для отправки запроса крови донору
type SendRequestRequest struct {
	SenderID string  `json:"senderId" validate:"required,mongodb"`
	DonorID  string  `json:"donorId" validate:"required,mongodb"`
	Message  string  `json:"message,omitempty" validate:"omitempty,max=1000"`
	Distance float64 `json:"distance,omitempty" validate:"gte=0"`
}

// BloodRequestResponse DTO созданного запроса крови
// @Description DTO созданного запроса крови
type BloodRequestResponse struct {
	ID       string `json:"id"`
	DonorID  string `json:"donorId"`
	SenderID string `json:"senderId"`
	Message  string `json:"message"`
	Status   string `json:"status"`
}

// RespondRequestRequest DTO для ответа донора на запрос
// @Description DTO для ответа донора на запрос
type RespondRequestRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	Total        int            `json:"total"`
	ByBloodGroup map[string]int `json:"byBloodGroup"`
}
