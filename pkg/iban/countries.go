package iban

// countryTable lists every ISO 3166-1 alpha-2 code plus XK (Kosovo). Rows
// without a length do not issue IBANs but are still valid BIC country codes.
var countryTable = []countryEntry{
	{code: "AD", name: "Andorra", length: 24, bban: "^[0-9]{8}[A-Z0-9]{12}$", registry: true, sepa: true},
	{code: "AE", name: "United Arab Emirates", length: 23, bban: "^[0-9]{19}$", registry: true},
	{code: "AF", name: "Afghanistan"},
	{code: "AG", name: "Antigua and Barbuda"},
	{code: "AI", name: "Anguilla"},
	{code: "AL", name: "Albania", length: 28, bban: "^[0-9]{8}[A-Z0-9]{16}$", registry: true},
	{code: "AM", name: "Armenia"},
	{code: "AO", name: "Angola", length: 25, bban: "^[0-9]{21}$"},
	{code: "AQ", name: "Antarctica"},
	{code: "AR", name: "Argentina"},
	{code: "AS", name: "American Samoa"},
	{code: "AT", name: "Austria", length: 20, bban: "^[0-9]{16}$", registry: true, sepa: true},
	{code: "AU", name: "Australia"},
	{code: "AW", name: "Aruba"},
	{code: "AX", name: "Åland Islands", sepa: true},
	{code: "AZ", name: "Azerbaijan", length: 28, bban: "^[A-Z]{4}[A-Z0-9]{20}$", registry: true},
	{code: "BA", name: "Bosnia and Herzegovina", length: 20, bban: "^[0-9]{16}$", registry: true},
	{code: "BB", name: "Barbados"},
	{code: "BD", name: "Bangladesh"},
	{code: "BE", name: "Belgium", length: 16, bban: "^[0-9]{12}$", registry: true, sepa: true},
	{code: "BF", name: "Burkina Faso", length: 28, bban: "^[A-Z0-9]{2}[0-9]{22}$"},
	{code: "BG", name: "Bulgaria", length: 22, bban: "^[A-Z]{4}[0-9]{6}[A-Z0-9]{8}$", registry: true, sepa: true},
	{code: "BH", name: "Bahrain", length: 22, bban: "^[A-Z]{4}[A-Z0-9]{14}$", registry: true},
	{code: "BI", name: "Burundi", length: 27, bban: "^[0-9]{23}$", registry: true},
	{code: "BJ", name: "Benin", length: 28, bban: "^[A-Z0-9]{2}[0-9]{22}$"},
	{code: "BL", name: "Saint Barthélemy", sepa: true},
	{code: "BM", name: "Bermuda"},
	{code: "BN", name: "Brunei Darussalam"},
	{code: "BO", name: "Bolivia"},
	{code: "BQ", name: "Bonaire, Sint Eustatius and Saba"},
	{code: "BR", name: "Brazil", length: 29, bban: "^[0-9]{23}[A-Z]{1}[A-Z0-9]{1}$", registry: true},
	{code: "BS", name: "Bahamas"},
	{code: "BT", name: "Bhutan"},
	{code: "BV", name: "Bouvet Island"},
	{code: "BW", name: "Botswana"},
	{code: "BY", name: "Belarus", length: 28, bban: "^[A-Z0-9]{4}[0-9]{4}[A-Z0-9]{16}$", registry: true},
	{code: "BZ", name: "Belize"},
	{code: "CA", name: "Canada"},
	{code: "CC", name: "Cocos (Keeling) Islands"},
	{code: "CD", name: "Congo, the Democratic Republic of the"},
	{code: "CF", name: "Central African Republic"},
	{code: "CG", name: "Congo"},
	{code: "CH", name: "Switzerland", length: 21, bban: "^[0-9]{5}[A-Z0-9]{12}$", registry: true, sepa: true},
	{code: "CI", name: "Côte d'Ivoire", length: 28, bban: "^[A-Z]{1}[0-9]{23}$"},
	{code: "CK", name: "Cook Islands"},
	{code: "CL", name: "Chile"},
	{code: "CM", name: "Cameroon", length: 27, bban: "^[0-9]{23}$"},
	{code: "CN", name: "China"},
	{code: "CO", name: "Colombia"},
	{code: "CR", name: "Costa Rica", length: 22, bban: "^[0-9]{18}$", registry: true},
	{code: "CU", name: "Cuba"},
	{code: "CV", name: "Cape Verde", length: 25, bban: "^[0-9]{21}$"},
	{code: "CW", name: "Curaçao"},
	{code: "CX", name: "Christmas Island"},
	{code: "CY", name: "Cyprus", length: 28, bban: "^[0-9]{8}[A-Z0-9]{16}$", registry: true, sepa: true},
	{code: "CZ", name: "Czech Republic", length: 24, bban: "^[0-9]{20}$", registry: true, sepa: true},
	{code: "DE", name: "Germany", length: 22, bban: "^[0-9]{18}$", registry: true, sepa: true},
	{code: "DJ", name: "Djibouti", length: 27, bban: "^[0-9]{23}$", registry: true},
	{code: "DK", name: "Denmark", length: 18, bban: "^[0-9]{14}$", registry: true, sepa: true},
	{code: "DM", name: "Dominica"},
	{code: "DO", name: "Dominican Republic", length: 28, bban: "^[A-Z0-9]{4}[0-9]{20}$", registry: true},
	{code: "DZ", name: "Algeria", length: 26, bban: "^[0-9]{22}$"},
	{code: "EC", name: "Ecuador"},
	{code: "EE", name: "Estonia", length: 20, bban: "^[0-9]{16}$", registry: true, sepa: true},
	{code: "EG", name: "Egypt", length: 29, bban: "^[0-9]{25}$", registry: true},
	{code: "EH", name: "Western Sahara"},
	{code: "ER", name: "Eritrea"},
	{code: "ES", name: "Spain", length: 24, bban: "^[0-9]{20}$", registry: true, sepa: true},
	{code: "ET", name: "Ethiopia"},
	{code: "FI", name: "Finland", length: 18, bban: "^[0-9]{14}$", registry: true, sepa: true},
	{code: "FJ", name: "Fiji"},
	{code: "FK", name: "Falkland Islands (Malvinas)", length: 18, bban: "^[A-Z]{2}[0-9]{12}$", registry: true},
	{code: "FM", name: "Micronesia, Federated States of"},
	{code: "FO", name: "Faroe Islands", length: 18, bban: "^[0-9]{14}$", registry: true},
	{code: "FR", name: "France", length: 27, bban: "^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$", registry: true, sepa: true},
	{code: "GA", name: "Gabon"},
	{code: "GB", name: "United Kingdom", length: 22, bban: "^[A-Z]{4}[0-9]{14}$", registry: true, sepa: true},
	{code: "GD", name: "Grenada"},
	{code: "GE", name: "Georgia", length: 22, bban: "^[A-Z]{2}[0-9]{16}$", registry: true},
	{code: "GF", name: "French Guiana", sepa: true},
	{code: "GG", name: "Guernsey", sepa: true},
	{code: "GH", name: "Ghana"},
	{code: "GI", name: "Gibraltar", length: 23, bban: "^[A-Z]{4}[A-Z0-9]{15}$", registry: true, sepa: true},
	{code: "GL", name: "Greenland", length: 18, bban: "^[0-9]{14}$", registry: true},
	{code: "GM", name: "Gambia"},
	{code: "GN", name: "Guinea"},
	{code: "GP", name: "Guadeloupe", sepa: true},
	{code: "GQ", name: "Equatorial Guinea"},
	{code: "GR", name: "Greece", length: 27, bban: "^[0-9]{7}[A-Z0-9]{16}$", registry: true, sepa: true},
	{code: "GS", name: "South Georgia and the South Sandwich Islands"},
	{code: "GT", name: "Guatemala", length: 28, bban: "^[A-Z0-9]{24}$", registry: true},
	{code: "GU", name: "Guam"},
	{code: "GW", name: "Guinea-Bissau"},
	{code: "GY", name: "Guyana"},
	{code: "HK", name: "Hong Kong"},
	{code: "HM", name: "Heard Island and McDonald Islands"},
	{code: "HN", name: "Honduras"},
	{code: "HR", name: "Croatia", length: 21, bban: "^[0-9]{17}$", registry: true, sepa: true},
	{code: "HT", name: "Haiti"},
	{code: "HU", name: "Hungary", length: 28, bban: "^[0-9]{24}$", registry: true, sepa: true},
	{code: "ID", name: "Indonesia"},
	{code: "IE", name: "Ireland", length: 22, bban: "^[A-Z]{4}[0-9]{14}$", registry: true, sepa: true},
	{code: "IL", name: "Israel", length: 23, bban: "^[0-9]{19}$", registry: true},
	{code: "IM", name: "Isle of Man", sepa: true},
	{code: "IN", name: "India"},
	{code: "IO", name: "British Indian Ocean Territory"},
	{code: "IQ", name: "Iraq", length: 23, bban: "^[A-Z]{4}[0-9]{15}$", registry: true},
	{code: "IR", name: "Iran, Islamic Republic of", length: 26, bban: "^[0-9]{22}$"},
	{code: "IS", name: "Iceland", length: 26, bban: "^[0-9]{22}$", registry: true, sepa: true},
	{code: "IT", name: "Italy", length: 27, bban: "^[A-Z]{1}[0-9]{10}[A-Z0-9]{12}$", registry: true, sepa: true},
	{code: "JE", name: "Jersey", sepa: true},
	{code: "JM", name: "Jamaica"},
	{code: "JO", name: "Jordan", length: 30, bban: "^[A-Z]{4}[0-9]{4}[A-Z0-9]{18}$", registry: true},
	{code: "JP", name: "Japan"},
	{code: "KE", name: "Kenya"},
	{code: "KG", name: "Kyrgyzstan"},
	{code: "KH", name: "Cambodia"},
	{code: "KI", name: "Kiribati"},
	{code: "KM", name: "Comoros"},
	{code: "KN", name: "Saint Kitts and Nevis"},
	{code: "KP", name: "Korea, Democratic People's Republic of"},
	{code: "KR", name: "Korea, Republic of"},
	{code: "KW", name: "Kuwait", length: 30, bban: "^[A-Z]{4}[A-Z0-9]{22}$", registry: true},
	{code: "KY", name: "Cayman Islands"},
	{code: "KZ", name: "Kazakhstan", length: 20, bban: "^[0-9]{3}[A-Z0-9]{13}$", registry: true},
	{code: "LA", name: "Lao People's Democratic Republic"},
	{code: "LB", name: "Lebanon", length: 28, bban: "^[0-9]{4}[A-Z0-9]{20}$", registry: true},
	{code: "LC", name: "Saint Lucia", length: 32, bban: "^[A-Z]{4}[A-Z0-9]{24}$", registry: true},
	{code: "LI", name: "Liechtenstein", length: 21, bban: "^[0-9]{5}[A-Z0-9]{12}$", registry: true, sepa: true},
	{code: "LK", name: "Sri Lanka"},
	{code: "LR", name: "Liberia"},
	{code: "LS", name: "Lesotho"},
	{code: "LT", name: "Lithuania", length: 20, bban: "^[0-9]{16}$", registry: true, sepa: true},
	{code: "LU", name: "Luxembourg", length: 20, bban: "^[0-9]{3}[A-Z0-9]{13}$", registry: true, sepa: true},
	{code: "LV", name: "Latvia", length: 21, bban: "^[A-Z]{4}[A-Z0-9]{13}$", registry: true, sepa: true},
	{code: "LY", name: "Libya", length: 25, bban: "^[0-9]{21}$", registry: true},
	{code: "MA", name: "Morocco"},
	{code: "MC", name: "Monaco", length: 27, bban: "^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$", registry: true, sepa: true},
	{code: "MD", name: "Moldova, Republic of", length: 24, bban: "^[A-Z0-9]{20}$", registry: true},
	{code: "ME", name: "Montenegro", length: 22, bban: "^[0-9]{18}$", registry: true},
	{code: "MF", name: "Saint Martin (French part)", sepa: true},
	{code: "MG", name: "Madagascar", length: 27, bban: "^[0-9]{23}$"},
	{code: "MH", name: "Marshall Islands"},
	{code: "MK", name: "North Macedonia", length: 19, bban: "^[0-9]{3}[A-Z0-9]{10}[0-9]{2}$", registry: true},
	{code: "ML", name: "Mali", length: 28, bban: "^[A-Z0-9]{2}[0-9]{22}$"},
	{code: "MM", name: "Myanmar"},
	{code: "MN", name: "Mongolia", length: 20, bban: "^[0-9]{16}$", registry: true},
	{code: "MO", name: "Macao"},
	{code: "MP", name: "Northern Mariana Islands"},
	{code: "MQ", name: "Martinique", sepa: true},
	{code: "MR", name: "Mauritania", length: 27, bban: "^[0-9]{23}$", registry: true},
	{code: "MS", name: "Montserrat"},
	{code: "MT", name: "Malta", length: 31, bban: "^[A-Z]{4}[0-9]{5}[A-Z0-9]{18}$", registry: true, sepa: true},
	{code: "MU", name: "Mauritius", length: 30, bban: "^[A-Z]{4}[0-9]{19}[A-Z]{3}$", registry: true},
	{code: "MV", name: "Maldives"},
	{code: "MW", name: "Malawi"},
	{code: "MX", name: "Mexico"},
	{code: "MY", name: "Malaysia"},
	{code: "MZ", name: "Mozambique", length: 25, bban: "^[0-9]{21}$"},
	{code: "NA", name: "Namibia"},
	{code: "NC", name: "New Caledonia"},
	{code: "NE", name: "Niger"},
	{code: "NF", name: "Norfolk Island"},
	{code: "NG", name: "Nigeria"},
	{code: "NI", name: "Nicaragua", length: 28, bban: "^[A-Z]{4}[0-9]{20}$", registry: true},
	{code: "NL", name: "Netherlands", length: 18, bban: "^[A-Z]{4}[0-9]{10}$", registry: true, sepa: true},
	{code: "NO", name: "Norway", length: 15, bban: "^[0-9]{11}$", registry: true, sepa: true},
	{code: "NP", name: "Nepal"},
	{code: "NR", name: "Nauru"},
	{code: "NU", name: "Niue"},
	{code: "NZ", name: "New Zealand"},
	{code: "OM", name: "Oman", length: 23, bban: "^[0-9]{3}[A-Z0-9]{16}$", registry: true},
	{code: "PA", name: "Panama"},
	{code: "PE", name: "Peru"},
	{code: "PF", name: "French Polynesia"},
	{code: "PG", name: "Papua New Guinea"},
	{code: "PH", name: "Philippines"},
	{code: "PK", name: "Pakistan", length: 24, bban: "^[A-Z]{4}[A-Z0-9]{16}$", registry: true},
	{code: "PL", name: "Poland", length: 28, bban: "^[0-9]{24}$", registry: true, sepa: true},
	{code: "PM", name: "Saint Pierre and Miquelon", sepa: true},
	{code: "PN", name: "Pitcairn"},
	{code: "PR", name: "Puerto Rico"},
	{code: "PS", name: "Palestine, State of", length: 29, bban: "^[A-Z]{4}[A-Z0-9]{21}$", registry: true},
	{code: "PT", name: "Portugal", length: 25, bban: "^[0-9]{21}$", registry: true, sepa: true},
	{code: "PW", name: "Palau"},
	{code: "PY", name: "Paraguay"},
	{code: "QA", name: "Qatar", length: 29, bban: "^[A-Z]{4}[A-Z0-9]{21}$", registry: true},
	{code: "RE", name: "Réunion", sepa: true},
	{code: "RO", name: "Romania", length: 24, bban: "^[A-Z]{4}[A-Z0-9]{16}$", registry: true, sepa: true},
	{code: "RS", name: "Serbia", length: 22, bban: "^[0-9]{18}$", registry: true},
	{code: "RU", name: "Russian Federation", length: 33, bban: "^[0-9]{14}[A-Z0-9]{15}$", registry: true},
	{code: "RW", name: "Rwanda"},
	{code: "SA", name: "Saudi Arabia", length: 24, bban: "^[0-9]{2}[A-Z0-9]{18}$", registry: true},
	{code: "SB", name: "Solomon Islands"},
	{code: "SC", name: "Seychelles", length: 31, bban: "^[A-Z]{4}[0-9]{20}[A-Z]{3}$", registry: true},
	{code: "SD", name: "Sudan", length: 18, bban: "^[0-9]{14}$", registry: true},
	{code: "SE", name: "Sweden", length: 24, bban: "^[0-9]{20}$", registry: true, sepa: true},
	{code: "SG", name: "Singapore"},
	{code: "SH", name: "Saint Helena, Ascension and Tristan da Cunha"},
	{code: "SI", name: "Slovenia", length: 19, bban: "^[0-9]{15}$", registry: true, sepa: true},
	{code: "SJ", name: "Svalbard and Jan Mayen"},
	{code: "SK", name: "Slovakia", length: 24, bban: "^[0-9]{20}$", registry: true, sepa: true},
	{code: "SL", name: "Sierra Leone"},
	{code: "SM", name: "San Marino", length: 27, bban: "^[A-Z]{1}[0-9]{10}[A-Z0-9]{12}$", registry: true, sepa: true},
	{code: "SN", name: "Senegal", length: 28, bban: "^[A-Z]{1}[0-9]{23}$"},
	{code: "SO", name: "Somalia", length: 23, bban: "^[0-9]{19}$", registry: true},
	{code: "SR", name: "Suriname"},
	{code: "SS", name: "South Sudan"},
	{code: "ST", name: "Sao Tome and Principe", length: 25, bban: "^[0-9]{21}$", registry: true},
	{code: "SV", name: "El Salvador", length: 28, bban: "^[A-Z]{4}[0-9]{20}$", registry: true},
	{code: "SX", name: "Sint Maarten (Dutch part)"},
	{code: "SY", name: "Syrian Arab Republic"},
	{code: "SZ", name: "Eswatini"},
	{code: "TC", name: "Turks and Caicos Islands"},
	{code: "TD", name: "Chad"},
	{code: "TF", name: "French Southern Territories"},
	{code: "TG", name: "Togo"},
	{code: "TH", name: "Thailand"},
	{code: "TJ", name: "Tajikistan"},
	{code: "TK", name: "Tokelau"},
	{code: "TL", name: "Timor-Leste", length: 23, bban: "^[0-9]{19}$", registry: true},
	{code: "TM", name: "Turkmenistan"},
	{code: "TN", name: "Tunisia", length: 24, bban: "^[0-9]{20}$", registry: true},
	{code: "TO", name: "Tonga"},
	{code: "TR", name: "Turkey", length: 26, bban: "^[0-9]{6}[A-Z0-9]{16}$", registry: true},
	{code: "TT", name: "Trinidad and Tobago"},
	{code: "TV", name: "Tuvalu"},
	{code: "TW", name: "Taiwan"},
	{code: "TZ", name: "Tanzania, United Republic of"},
	{code: "UA", name: "Ukraine", length: 29, bban: "^[0-9]{6}[A-Z0-9]{19}$", registry: true},
	{code: "UG", name: "Uganda"},
	{code: "UM", name: "United States Minor Outlying Islands"},
	{code: "US", name: "United States of America"},
	{code: "UY", name: "Uruguay"},
	{code: "UZ", name: "Uzbekistan"},
	{code: "VA", name: "Holy See (Vatican City State)", length: 22, bban: "^[0-9]{18}$", registry: true, sepa: true},
	{code: "VC", name: "Saint Vincent and the Grenadines"},
	{code: "VE", name: "Venezuela"},
	{code: "VG", name: "Virgin Islands, British", length: 24, bban: "^[A-Z]{4}[0-9]{16}$", registry: true},
	{code: "VI", name: "Virgin Islands, U.S."},
	{code: "VN", name: "Viet Nam"},
	{code: "VU", name: "Vanuatu"},
	{code: "WF", name: "Wallis and Futuna"},
	{code: "WS", name: "Samoa"},
	{code: "XK", name: "Kosovo", length: 20, bban: "^[0-9]{16}$", registry: true},
	{code: "YE", name: "Yemen"},
	{code: "YT", name: "Mayotte", sepa: true},
	{code: "ZA", name: "South Africa"},
	{code: "ZM", name: "Zambia"},
	{code: "ZW", name: "Zimbabwe"},
}
