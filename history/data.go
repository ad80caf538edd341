package history

// MonthlyOTP is the WMATA Service Excellence Report monthly bus on-time
// performance series (BUOTP sheet), oldest first.
// Source: https://www.wmata.com/about/records/upload/Service-Excellence-Report-Data-July-2020-November-2025.xlsx
var MonthlyOTP = []MonthlyReport{
	{2020, 7, 76.0, 12.8, 11.1, 816444},
	{2020, 8, 75.3, 15.5, 9.2, 1026412},
	{2020, 9, 75.0, 17.0, 8.1, 1570150},
	{2020, 10, 75.0, 16.7, 8.3, 1689784},
	{2020, 11, 75.5, 16.3, 8.2, 1686498},
	{2020, 12, 75.9, 15.3, 8.8, 1641530},
	{2021, 1, 76.2, 14.9, 8.9, 1554218},
	{2021, 2, 78.3, 13.0, 8.7, 1394560},
	{2021, 3, 76.7, 14.1, 9.3, 1662476},
	{2021, 4, 76.3, 13.9, 9.8, 1699506},
	{2021, 5, 75.8, 14.3, 9.9, 1693386},
	{2021, 6, 75.2, 14.8, 10.0, 1754042},
	{2021, 7, 74.6, 15.3, 10.1, 1750936},
	{2021, 8, 73.7, 14.5, 11.8, 1822622},
	{2021, 9, 73.0, 13.4, 13.7, 1869804},
	{2021, 10, 72.4, 13.2, 14.4, 1884978},
	{2021, 11, 72.3, 13.3, 14.4, 1812424},
	{2021, 12, 73.1, 13.8, 13.2, 1753866},
	{2022, 1, 73.3, 13.8, 12.9, 1612174},
	{2022, 2, 73.2, 13.2, 13.6, 1549714},
	{2022, 3, 72.4, 12.7, 14.9, 1825776},
	{2022, 4, 71.6, 12.3, 16.1, 1808618},
	{2022, 5, 70.2, 11.8, 18.0, 1886458},
	{2022, 6, 69.7, 12.3, 18.0, 1786066},
	{2022, 7, 69.2, 12.7, 18.1, 1835076},
	{2022, 8, 68.8, 12.3, 18.9, 1870560},
	{2022, 9, 70.7, 11.6, 17.7, 1847710},
	{2022, 10, 71.1, 11.8, 17.1, 1875600},
	{2022, 11, 72.0, 12.3, 15.7, 1779660},
	{2022, 12, 73.5, 12.8, 13.7, 1713426},
	{2023, 1, 73.7, 12.4, 13.9, 1702024},
	{2023, 2, 73.6, 11.6, 14.8, 1615098},
	{2023, 3, 72.9, 11.1, 16.0, 1900476},
	{2023, 4, 72.3, 10.7, 17.0, 1820966},
	{2023, 5, 72.2, 10.3, 17.5, 1955870},
	{2023, 6, 72.3, 10.9, 16.8, 1843752},
	{2023, 7, 71.1, 11.5, 17.4, 1867622},
	{2023, 8, 72.2, 11.3, 16.5, 1919484},
	{2023, 9, 73.0, 10.7, 16.3, 1874754},
	{2023, 10, 73.2, 10.3, 16.5, 1943970},
	{2023, 11, 74.3, 10.9, 14.8, 1849626},
	{2023, 12, 75.3, 11.6, 13.1, 1746336},
	{2024, 1, 75.1, 11.1, 13.8, 1787886},
	{2024, 2, 74.8, 10.5, 14.7, 1719480},
	{2024, 3, 73.5, 9.6, 16.9, 1906404},
	{2024, 4, 73.7, 9.5, 16.8, 1887402},
	{2024, 5, 73.7, 9.4, 16.9, 1985754},
	{2024, 6, 74.7, 9.9, 15.4, 1811322},
	{2024, 7, 75.6, 10.2, 14.2, 2060340},
	{2024, 8, 76.0, 10.0, 14.0, 2082708},
	{2024, 9, 75.8, 9.4, 14.8, 2021844},
	{2024, 10, 75.7, 9.5, 14.8, 2113086},
	{2024, 11, 76.0, 10.3, 13.7, 1996188},
	{2024, 12, 75.1, 10.3, 14.5, 2156888},
	{2025, 1, 76.5, 10.1, 13.4, 1953153},
	{2025, 2, 77.5, 8.7, 13.7, 1831223},
	{2025, 3, 75.8, 7.5, 16.7, 2172871},
	{2025, 4, 75.7, 7.9, 16.4, 2132195},
	{2025, 5, 74.9, 7.3, 17.8, 2144619},
	{2025, 6, 75.7, 8.6, 15.7, 1919342},
	{2025, 7, 76.3, 9.8, 13.9, 2360879},
	{2025, 8, 77.3, 9.3, 13.4, 2354271},
	{2025, 9, 75.7, 8.2, 16.1, 2248617},
	{2025, 10, 76.6, 8.2, 15.2, 2333731},
	{2025, 11, 76.9, 9.4, 13.8, 2190170},
}

// RouteOTP is the per-route weekday on-time performance for FY2025
// (July 2024 - June 2025) from the WMATA Annual Line Performance Report.
// Source: https://www.wmata.com/about/records/upload/ALPR-FY2025_DRAFT_20260107.pdf
var RouteOTP = RouteOTPTable{
	"10A": 78, "10B": 81, "11Y": 64, "16A": 83, "16C": 87, "16Y": 69,
	"17B": 64, "17G": 75, "17K": 69, "17M": 77, "18G": 83, "18J": 74,
	"18P": 80, "1A": 78, "1B": 80, "1C": 80, "21C": 88, "22A": 82,
	"22F": 87, "23A": 73, "23B": 81, "23T": 74, "25B": 87, "26A": 75,
	"28A": 78, "28F": 81, "29G": 76, "29K": 76, "29N": 75, "2A": 85,
	"2B": 75, "31": 76, "32": 69, "33": 71, "36": 63, "38B": 78,
	"3Y": 64, "42": 79, "43": 81, "4B": 87, "52": 74, "54": 77,
	"59": 74, "60": 79, "62": 82, "63": 69, "64": 72, "70": 69,
	"74": 79, "79": 77, "7A": 83, "80": 73, "83": 72, "86": 74,
	"89M": 76, "8W": 89, "90": 63, "92": 65, "96": 66, "A12": 84,
	"A2": 82, "A4": 85, "A6": 78, "A7": 82, "A8": 79, "B2": 74,
	"B21": 89, "B22": 82, "B24": 73, "B27": 83, "C11": 90, "C12": 81,
	"C13": 82, "C14": 86, "C2": 68, "C21": 79, "C22": 76, "C26": 76,
	"C4": 74, "C8": 63, "D12": 72, "D14": 69, "D2": 79, "D4": 78,
	"D6": 62, "D8": 73, "E2": 78, "E4": 71, "F1": 76, "F12": 79,
	"F13": 68, "F14": 79, "F4": 73, "F6": 70, "F8": 71, "G12": 80,
	"G14": 77, "G2": 75, "G8": 73, "H12": 87, "H2": 69, "H4": 72,
	"H6": 76, "H8": 79, "H9": 92, "J1": 75, "J12": 82, "J2": 76,
	"K12": 78, "K2": 70, "K6": 62, "K9": 69, "L12": 83, "L2": 75,
	"L8": 78, "M4": 74, "M6": 78, "MW1": 87, "N2": 73, "N4": 78,
	"N6": 83, "NH1": 79, "NH2": 86, "P12": 78, "P18": 74, "P6": 67,
	"Q2": 83, "Q4": 76, "Q6": 77, "R1": 57, "R12": 74, "R2": 63,
	"R4": 75, "REX": 77, "S2": 75, "S9": 80, "T14": 69, "T18": 74,
	"T2": 81, "U4": 81, "U5": 78, "U6": 76, "U7": 80, "V12": 83,
	"V14": 79, "V2": 76, "V4": 76, "V7": 74, "V8": 84, "W1": 73,
	"W14": 78, "W2": 71, "W3": 69, "W4": 73, "W5": 83, "W6": 78,
	"W8": 77, "X2": 73, "X3": 66, "X8": 74, "X9": 73, "Y2": 81,
	"Y7": 75, "Y8": 76, "Z2": 70, "Z6": 73, "Z7": 77, "Z8": 75,
}
